package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/waiver/internal/mail"
	"github.com/jjenkins/waiver/internal/model"
	"github.com/jjenkins/waiver/internal/release"
)

type fakeStore struct {
	insertErr error
	records   []*model.WaiverRecord
}

func (s *fakeStore) Insert(ctx context.Context, rec *model.WaiverRecord) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	rec.ID = "waiver-1"
	s.records = append(s.records, rec)
	return rec.ID, nil
}

type fakeMailer struct {
	sendErr error
	sent    []mail.Notification
}

func (m *fakeMailer) Send(ctx context.Context, n mail.Notification) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, n)
	return nil
}

func newTestApp(store *fakeStore, mailer *fakeMailer) *fiber.App {
	app := fiber.New()
	app.All("/api/submit", SubmitHandler(store, mailer))
	app.Get("/", FormHandler())
	return app
}

func validBody() map[string]string {
	return map[string]string{
		"formId":            release.FormID,
		"parentName":        "Jane Doe",
		"parentEmail":       "jane@example.com",
		"parentPhone":       "555-0100",
		"childName":         "Sam Doe",
		"childDOB":          "2014-03-02",
		"childAddress":      "1 Main St, Billings MT 59101",
		"childMedicalNotes": "None",
		"signature":         "Jane Doe",
		"dateSigned":        "2025-06-01",
		"liabilityText":     release.Text,
	}
}

func submitRequest(t *testing.T, body map[string]string) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/submit", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitRejectsNonPost(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	app := newTestApp(store, mailer)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/submit", nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("%s request failed: %v", method, err)
		}
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("%s status = %d, want 405", method, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if len(body) != 0 {
			t.Errorf("%s body = %q, want empty", method, body)
		}
	}

	if len(store.records) != 0 {
		t.Errorf("disallowed methods persisted %d records", len(store.records))
	}
	if len(mailer.sent) != 0 {
		t.Errorf("disallowed methods sent %d emails", len(mailer.sent))
	}
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	app := newTestApp(store, mailer)

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if len(store.records) != 0 || len(mailer.sent) != 0 {
		t.Error("malformed body caused side effects")
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	app := newTestApp(store, mailer)

	body := validBody()
	delete(body, "signature")
	delete(body, "parentEmail")

	resp, err := app.Test(submitRequest(t, body), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	var payload struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Error != "missing required fields" {
		t.Errorf("error = %q", payload.Error)
	}
	want := map[string]bool{"signature": true, "parentEmail": true}
	if len(payload.Fields) != len(want) {
		t.Errorf("fields = %v, want signature and parentEmail", payload.Fields)
	}
	for _, f := range payload.Fields {
		if !want[f] {
			t.Errorf("unexpected missing field %q", f)
		}
	}
	if len(store.records) != 0 || len(mailer.sent) != 0 {
		t.Error("invalid submission caused side effects")
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused")}
	mailer := &fakeMailer{}
	app := newTestApp(store, mailer)

	resp, err := app.Test(submitRequest(t, validBody()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["error"] != "server error" {
		t.Errorf("error = %q, want generic server error", payload["error"])
	}
	if len(mailer.sent) != 0 {
		t.Errorf("persistence failure still sent %d emails", len(mailer.sent))
	}
}

func TestSubmitMailFailureIsInvisible(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{sendErr: errors.New("provider rejected")}
	app := newTestApp(store, mailer)

	resp, err := app.Test(submitRequest(t, validBody()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 despite mail failure", resp.StatusCode)
	}
	if len(store.records) != 1 {
		t.Errorf("records = %d, want exactly 1", len(store.records))
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	app := newTestApp(store, mailer)

	req := submitRequest(t, validBody())
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://camp.example/release")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload["ok"] {
		t.Errorf("response = %v, want ok=true", payload)
	}

	if len(store.records) != 1 {
		t.Fatalf("records = %d, want 1", len(store.records))
	}
	rec := store.records[0]
	if rec.ParentName != "Jane Doe" || rec.ChildName != "Sam Doe" {
		t.Errorf("record fields not preserved: %+v", rec)
	}
	if rec.IP != "1.2.3.4" {
		t.Errorf("record IP = %q, want first forwarded-for hop", rec.IP)
	}
	if rec.UserAgent != "Mozilla/5.0" {
		t.Errorf("record UserAgent = %q", rec.UserAgent)
	}
	if rec.Referer != "https://camp.example/release" {
		t.Errorf("record Referer = %q", rec.Referer)
	}
	if rec.LiabilityText != release.Text {
		t.Error("record did not capture the legal text verbatim")
	}
	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(rec.PDFHash) {
		t.Errorf("record PDFHash = %q, want 64 hex chars", rec.PDFHash)
	}
	if rec.SubmittedAt.IsZero() {
		t.Error("record SubmittedAt not set")
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("emails = %d, want exactly 1", len(mailer.sent))
	}
	n := mailer.sent[0]
	if n.ParentName != "Jane Doe" || n.ChildName != "Sam Doe" || n.IP != "1.2.3.4" {
		t.Errorf("notification headline fields wrong: %+v", n)
	}
	if !bytes.HasPrefix(n.PDF, []byte("%PDF")) {
		t.Error("notification attachment is not the rendered document")
	}
}

func TestSubmitDefaultsDateSignedAndLiabilityText(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	app := newTestApp(store, mailer)

	body := validBody()
	delete(body, "dateSigned")
	delete(body, "liabilityText")

	resp, err := app.Test(submitRequest(t, body), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	rec := store.records[0]
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(rec.DateSigned) {
		t.Errorf("DateSigned = %q, want submission date", rec.DateSigned)
	}
	if rec.LiabilityText != release.Text {
		t.Error("missing liabilityText should fall back to the canonical text")
	}
}

func TestFormPage(t *testing.T) {
	app := newTestApp(&fakeStore{}, &fakeMailer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	page := string(body)

	if !strings.Contains(page, release.Title) {
		t.Error("page missing form title")
	}
	if !strings.Contains(page, "Beartooth Christian Camp") {
		t.Error("page missing legal text")
	}
	if !strings.Contains(page, `name="liabilityText"`) {
		t.Error("page missing hidden liability text field")
	}
	if !strings.Contains(page, "/api/submit") {
		t.Error("page does not post to the submit endpoint")
	}
}

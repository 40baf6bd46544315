package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/waiver/internal/audit"
	"github.com/jjenkins/waiver/internal/mail"
	"github.com/jjenkins/waiver/internal/model"
	"github.com/jjenkins/waiver/internal/pdf"
	"github.com/jjenkins/waiver/internal/release"
)

// WaiverStore persists completed waivers.
type WaiverStore interface {
	Insert(ctx context.Context, rec *model.WaiverRecord) (string, error)
}

// requiredFields lists the fields the form marks required, in presentation
// order. The UI enforces these client-side; the server re-checks so a
// hand-crafted request cannot persist an unsigned or unattributable record.
var requiredFields = []struct {
	name  string
	value func(model.Waiver) string
}{
	{"parentName", func(w model.Waiver) string { return w.ParentName }},
	{"parentEmail", func(w model.Waiver) string { return w.ParentEmail }},
	{"parentPhone", func(w model.Waiver) string { return w.ParentPhone }},
	{"childName", func(w model.Waiver) string { return w.ChildName }},
	{"childDOB", func(w model.Waiver) string { return w.ChildDOB }},
	{"childAddress", func(w model.Waiver) string { return w.ChildAddress }},
	{"childMedicalNotes", func(w model.Waiver) string { return w.ChildMedicalNotes }},
	{"signature", func(w model.Waiver) string { return w.Signature }},
}

// SubmitHandler handles POST /api/submit: validate, render the PDF, digest
// it, persist the combined record, then notify staff.
//
// The reliability contract: success is returned only after the record is
// durably persisted, any failure before that aborts with a generic server
// error and no side effects, and a notification failure never downgrades the
// response.
func SubmitHandler(waivers WaiverStore, mailer mail.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			// 405 with an empty body, before any side effects.
			return c.Status(fiber.StatusMethodNotAllowed).Send(nil)
		}

		var form model.Waiver
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		if missing := missingRequired(form); len(missing) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "missing required fields",
				"fields": missing,
			})
		}

		meta := audit.Collect(
			time.Now(),
			c.Get(fiber.HeaderXForwardedFor),
			c.IP(),
			c.Get(fiber.HeaderUserAgent),
			refererHeader(c),
		)

		if form.DateSigned == "" {
			form.DateSigned = meta.SubmittedAt.Format("2006-01-02")
		}
		if form.LiabilityText == "" {
			// The page embeds the text in a hidden field; if a client strips
			// it, fall back to the canonical text this server serves so the
			// record is never stored without the terms it attests to.
			form.LiabilityText = release.Text
		}

		doc, err := pdf.Render(form, meta)
		if err != nil {
			slog.Error("failed to render waiver pdf", "error", err)
			return serverError(c)
		}

		rec := &model.WaiverRecord{
			Waiver:      form,
			SubmittedAt: meta.SubmittedAt,
			IP:          meta.IP,
			UserAgent:   meta.UserAgent,
			Referer:     meta.Referer,
			PDFHash:     audit.Fingerprint(doc),
		}
		id, err := waivers.Insert(c.UserContext(), rec)
		if err != nil {
			slog.Error("failed to insert waiver", "error", err)
			return serverError(c)
		}

		// Best-effort from here: the record is durable, so a failed email is
		// logged and swallowed rather than surfaced to the signer.
		notification := mail.Notification{
			ParentName:  form.ParentName,
			ChildName:   form.ChildName,
			SubmittedAt: meta.SubmittedAt,
			IP:          meta.IP,
			PDF:         doc,
		}
		if err := mailer.Send(c.UserContext(), notification); err != nil {
			slog.Error("failed to send waiver notification", "error", err, "waiver_id", id)
		} else {
			slog.Info("waiver notification sent", "waiver_id", id)
		}

		return c.JSON(fiber.Map{"ok": true})
	}
}

func missingRequired(w model.Waiver) []string {
	var missing []string
	for _, f := range requiredFields {
		if f.value(w) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// refererHeader accepts both the standard misspelling and the correct one.
func refererHeader(c *fiber.Ctx) string {
	if v := c.Get(fiber.HeaderReferer); v != "" {
		return v
	}
	return c.Get("Referrer")
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server error"})
}

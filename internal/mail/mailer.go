// Package mail delivers the rendered release document to the staff
// distribution list. Delivery is best-effort by design: callers log failures
// and move on, and there is no retry or outbox.
package mail

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/resend/resend-go/v2"
)

// Notification carries the headline fields and rendered document for one
// staff email.
type Notification struct {
	ParentName  string
	ChildName   string
	SubmittedAt time.Time
	IP          string
	PDF         []byte
}

// Mailer sends a submission notification.
type Mailer interface {
	Send(ctx context.Context, n Notification) error
}

// ResendMailer sends notifications through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     []string
}

// NewResendMailer creates a mailer for the given credential and fixed
// distribution list.
func NewResendMailer(apiKey, from string, to []string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// Send emails one message with the release document attached.
func (m *ResendMailer) Send(ctx context.Context, n Notification) error {
	params := newSendRequest(m.from, m.to, n)
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send release notification: %w", err)
	}
	return nil
}

// newSendRequest builds the outbound message: an HTML summary of the headline
// fields plus the PDF attached under a filename derived from the parent name.
func newSendRequest(from string, to []string, n Notification) *resend.SendEmailRequest {
	return &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("2025 Summer Camp Release from %s", n.ParentName),
		Html: fmt.Sprintf(`<h2>New Liability Release Submitted</h2>
<p><strong>Parent:</strong> %s<br/>
   <strong>Child:</strong> %s<br/>
   <strong>When:</strong> %s<br/>
   <strong>IP:</strong> %s
</p>`,
			html.EscapeString(n.ParentName),
			html.EscapeString(n.ChildName),
			n.SubmittedAt.Format(time.RFC3339),
			html.EscapeString(n.IP),
		),
		Attachments: []*resend.Attachment{
			{
				Filename: fmt.Sprintf("Release_%s.pdf", n.ParentName),
				Content:  n.PDF,
			},
		},
	}
}

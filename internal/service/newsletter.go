package service

import (
	"context"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
)

// SendResult reports the outcome for one newsletter recipient. Err is nil
// on success.
type SendResult struct {
	Recipient string
	Err       error
}

// NewsletterService prepares and delivers a newsletter issue. The HTML is
// composed and its inline images extracted exactly once; delivery then
// iterates recipients sequentially, one transport call each. A failed
// recipient is recorded and the loop keeps going; the caller decides
// what to do with partial success instead of the send silently stopping.
type NewsletterService struct {
	sender Sender
}

// NewNewsletterService wires the newsletter workflow.
func NewNewsletterService(sender Sender) *NewsletterService {
	return &NewsletterService{sender: sender}
}

// SendBatch validates the issue, rewrites inline data-URI images into
// CID attachments, appends any uploaded files after them (upload order
// preserved), and sends to each recipient in turn. It returns one
// SendResult per recipient, in recipient order. The error return is
// non-nil only for validation failures, in which case nothing was sent.
func (s *NewsletterService) SendBatch(ctx context.Context, subject, html string, recipients []string, uploads []mailer.Attachment) ([]SendResult, error) {
	msg, err := mailer.Compose(&mailer.Request{
		Type:       mailer.TypeNewsletter,
		Subject:    subject,
		HTMLBody:   html,
		Recipients: recipients,
	})
	if err != nil {
		return nil, err
	}

	rewritten, inline := mailer.ExtractInlineImages(msg.HTML)
	msg.HTML = rewritten
	msg.Attachments = append(inline, uploads...)

	results := make([]SendResult, 0, len(recipients))
	for _, to := range recipients {
		results = append(results, SendResult{Recipient: to, Err: s.sender.Send(ctx, to, msg)})
	}
	return results, nil
}

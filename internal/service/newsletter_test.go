package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
)

// flakySender fails for a chosen set of recipients and records the rest.
type flakySender struct {
	failFor map[string]bool
	to      []string
	msgs    []*mailer.Message
}

func (f *flakySender) Send(_ context.Context, to string, m *mailer.Message) error {
	if f.failFor[to] {
		return &mailer.TransportError{Err: errors.New("mailbox unavailable")}
	}
	f.to = append(f.to, to)
	f.msgs = append(f.msgs, m)
	return nil
}

func TestSendBatchContinuesPastFailures(t *testing.T) {
	sender := &flakySender{failFor: map[string]bool{"b@example.com": true}}
	svc := NewNewsletterService(sender)

	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	results, err := svc.SendBatch(context.Background(), "Noutăți", "<p>Salut</p>", recipients, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected one result per recipient, got %d", len(results))
	}
	for i, want := range recipients {
		if results[i].Recipient != want {
			t.Errorf("results[%d].Recipient = %q, want %q", i, results[i].Recipient, want)
		}
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("healthy recipients must succeed: %v, %v", results[0].Err, results[2].Err)
	}
	var te *mailer.TransportError
	if !errors.As(results[1].Err, &te) {
		t.Errorf("failed recipient should carry a TransportError, got %v", results[1].Err)
	}
	if len(sender.to) != 2 {
		t.Errorf("expected 2 delivered messages, got %d", len(sender.to))
	}
}

func TestSendBatchValidation(t *testing.T) {
	sender := &flakySender{}
	svc := NewNewsletterService(sender)

	_, err := svc.SendBatch(context.Background(), "", "<p>hi</p>", []string{"a@example.com"}, nil)
	if !errors.Is(err, mailer.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(sender.to) != 0 {
		t.Error("nothing may be sent when validation fails")
	}
}

func TestSendBatchRewritesInlineImagesOnce(t *testing.T) {
	png := base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})
	html := `<p>Salut</p><img src="data:image/png;base64,` + png + `">`
	upload := mailer.Attachment{Filename: "meniu.pdf", Content: []byte("%PDF"), ContentType: "application/pdf"}

	sender := &flakySender{}
	svc := NewNewsletterService(sender)

	results, err := svc.SendBatch(context.Background(), "Noutăți", html, []string{"a@example.com", "b@example.com"}, []mailer.Attachment{upload})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("send to %s failed: %v", r.Recipient, r.Err)
		}
	}

	// Both recipients get the same prepared message: image rewritten to a
	// cid reference, inline attachment first, upload after it.
	if len(sender.msgs) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(sender.msgs))
	}
	for _, msg := range sender.msgs {
		if strings.Contains(msg.HTML, "data:image") {
			t.Errorf("data URI left in HTML:\n%s", msg.HTML)
		}
		if !strings.Contains(msg.HTML, "cid:") {
			t.Errorf("expected a cid reference in HTML:\n%s", msg.HTML)
		}
		if len(msg.Attachments) != 2 {
			t.Fatalf("expected inline image plus upload, got %d attachments", len(msg.Attachments))
		}
		if msg.Attachments[0].CID == "" {
			t.Error("inline attachment must carry a content id")
		}
		if msg.Attachments[1].Filename != "meniu.pdf" || msg.Attachments[1].CID != "" {
			t.Errorf("upload must follow inline images unchanged, got %+v", msg.Attachments[1])
		}
	}
}

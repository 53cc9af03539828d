package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/model"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
	"github.com/cutie-cafe/cutie-backend/internal/service"
)

// SubscriberSource is the slice of the newsletter repository the handler
// needs: signups and the fallback recipient list when a send request does
// not name recipients. *repository.NewsletterRepo satisfies it.
type SubscriberSource interface {
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	ListEmails(ctx context.Context) ([]string, error)
}

// NewsletterHandler serves the newsletter composer endpoint and the public
// subscribe endpoint.
type NewsletterHandler struct {
	Service     *service.NewsletterService
	Subscribers SubscriberSource
}

// NewNewsletterHandler wires the newsletter endpoints.
func NewNewsletterHandler(svc *service.NewsletterService, subs SubscriberSource) *NewsletterHandler {
	return &NewsletterHandler{Service: svc, Subscribers: subs}
}

// sendFailure mirrors a failed recipient in the response body.
type sendFailure struct {
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

// SendNewsletter handles POST /api/send-newsletter. The composer panel
// posts either multipart form data (subject, message, recipients as a
// JSON array string, attachments as files) or plain JSON when there are
// no uploads. When recipients are omitted, the stored subscriber list is
// used. The response reports per-recipient outcomes instead of aborting
// on the first failure.
func (h *NewsletterHandler) SendNewsletter(c echo.Context) error {
	subject, message, recipients, uploads, err := h.parseSendRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}

	if len(recipients) == 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		recipients, err = h.Subscribers.ListEmails(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "failed to load subscribers"})
		}
	}

	results, err := h.Service.SendBatch(c.Request().Context(), subject, message, recipients, uploads)
	if err != nil {
		if errors.Is(err, mailer.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	sent := 0
	failures := []sendFailure{}
	for _, r := range results {
		if r.Err == nil {
			sent++
			continue
		}
		failures = append(failures, sendFailure{Recipient: r.Recipient, Error: r.Err.Error()})
	}

	resp := echo.Map{"success": len(failures) == 0, "sent": sent, "failed": len(failures)}
	if len(failures) > 0 {
		resp["failures"] = failures
		c.Logger().Errorf("send-newsletter: %d of %d recipients failed", len(failures), len(results))
	}
	return c.JSON(http.StatusOK, resp)
}

// parseSendRequest accepts both encodings of the composer payload.
func (h *NewsletterHandler) parseSendRequest(c echo.Context) (subject, message string, recipients []string, uploads []mailer.Attachment, err error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		form, ferr := c.MultipartForm()
		if ferr != nil {
			return "", "", nil, nil, errors.New("invalid multipart form")
		}
		subject = c.FormValue("subject")
		message = c.FormValue("message")
		if raw := c.FormValue("recipients"); raw != "" {
			if jerr := json.Unmarshal([]byte(raw), &recipients); jerr != nil {
				return "", "", nil, nil, errors.New("recipients must be a JSON array")
			}
		}
		for _, fh := range form.File["attachments"] {
			f, ferr := fh.Open()
			if ferr != nil {
				return "", "", nil, nil, errors.New("failed to read attachment " + fh.Filename)
			}
			content, rerr := io.ReadAll(f)
			f.Close()
			if rerr != nil {
				return "", "", nil, nil, errors.New("failed to read attachment " + fh.Filename)
			}
			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}
			uploads = append(uploads, mailer.Attachment{Filename: fh.Filename, Content: content, ContentType: ct})
		}
		return subject, message, recipients, uploads, nil
	}

	var body struct {
		Subject    string   `json:"subject"`
		Message    string   `json:"message"`
		Recipients []string `json:"recipients"`
	}
	if berr := c.Bind(&body); berr != nil {
		return "", "", nil, nil, errors.New("invalid body")
	}
	return body.Subject, body.Message, body.Recipients, nil, nil
}

// Subscribe handles POST /v1/newsletter/subscribe. Emails are normalized
// before insert; a repeat subscription returns 409 with the same message
// the site has always shown.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sub, err := h.Subscribers.Subscribe(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Această adresă de email este deja abonată la newsletter."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "subscribe failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": sub})
}

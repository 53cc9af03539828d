package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/service"
)

// MailHandler serves the SPA-facing mail endpoints under /api. It only
// composes and sends; nothing here touches storage, matching the
// original site where these endpoints were a thin relay.
type MailHandler struct {
	Sender service.Sender
}

// NewMailHandler returns a MailHandler using the given transport.
func NewMailHandler(sender service.Sender) *MailHandler {
	return &MailHandler{Sender: sender}
}

// SendReservationEmail handles POST /api/send-reservation-email. The body
// is the tagged request ({"type": "reservation"|"decline"|"event", ...});
// responses keep the original {success, error?} shape the SPA expects.
func (h *MailHandler) SendReservationEmail(c echo.Context) error {
	var req mailer.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid body"})
	}
	if req.Type == mailer.TypeDecline && req.Reason == "" {
		req.Reason = service.DefaultDeclineReason
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "missing email"})
	}

	msg, err := mailer.Compose(&req)
	if err != nil {
		if errors.Is(err, mailer.ErrValidation) || errors.Is(err, mailer.ErrUnknownRequestType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "compose failed"})
	}

	if err := h.Sender.Send(c.Request().Context(), req.Email, msg); err != nil {
		c.Logger().Errorf("send-reservation-email: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

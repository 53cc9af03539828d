package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
	"github.com/cutie-cafe/cutie-backend/internal/service"
)

// AdminHandler bundles the authenticated back-office endpoints.
type AdminHandler struct {
	Reservations *repository.ReservationRepo
	Transitions  *service.ReservationService
	Events       *repository.EventRepo
	Products     *repository.ProductRepo
	Services     *repository.ServiceRepo
	Subscribers  *repository.NewsletterRepo
}

// NewAdminHandler wires the admin endpoints.
func NewAdminHandler(res *repository.ReservationRepo, tr *service.ReservationService,
	ev *repository.EventRepo, prod *repository.ProductRepo, svc *repository.ServiceRepo,
	subs *repository.NewsletterRepo) *AdminHandler {
	return &AdminHandler{Reservations: res, Transitions: tr, Events: ev, Products: prod, Services: svc, Subscribers: subs}
}

// ListReservations handles GET /v1/admin/reservations with optional
// ?status=, ?date= and ?name= filters, mirroring the panel's filter bar.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Reservations.List(ctx, repository.ReservationFilter{
		Status: c.QueryParam("status"),
		Date:   c.QueryParam("date"),
		Name:   c.QueryParam("name"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// ConfirmReservation handles POST /v1/admin/reservations/:id/confirm.
// The customer email goes out before the status is written; a transport
// failure leaves the reservation pending and is reported here.
func (h *AdminHandler) ConfirmReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	res, err := h.Transitions.Confirm(c.Request().Context(), id)
	if err != nil {
		return transitionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": res})
}

// DeclineReservation handles POST /v1/admin/reservations/:id/decline with
// an optional {reason}; a blank reason falls back to the standard message.
func (h *AdminHandler) DeclineReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil && c.Request().ContentLength > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res, err := h.Transitions.Decline(c.Request().Context(), id, body.Reason)
	if err != nil {
		return transitionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": res})
}

// transitionError maps the transition service's error contract onto HTTP.
func transitionError(c echo.Context, err error) error {
	var te *mailer.TransportError
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, repository.ErrAlreadyDecided):
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already decided"})
	case errors.As(err, &te):
		c.Logger().Errorf("transition email: %v", te)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "email send failed; reservation left pending"})
	case errors.Is(err, mailer.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		c.Logger().Errorf("transition: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "transition failed"})
	}
}

// ListSubscribers handles GET /v1/admin/subscribers.
func (h *AdminHandler) ListSubscribers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	subs, err := h.Subscribers.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, subs)
}

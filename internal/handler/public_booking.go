package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/model"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
	"github.com/cutie-cafe/cutie-backend/internal/service"
)

// PublicHandler bundles the unauthenticated endpoints: the booking form,
// event signups, and the catalog reads the SPA renders.
type PublicHandler struct {
	Reservations *repository.ReservationRepo
	Events       *repository.EventRepo
	Products     *repository.ProductRepo
	Services     *repository.ServiceRepo
	Sender       service.Sender
}

// NewPublicHandler wires the public endpoints.
func NewPublicHandler(res *repository.ReservationRepo, ev *repository.EventRepo,
	prod *repository.ProductRepo, svc *repository.ServiceRepo, sender service.Sender) *PublicHandler {
	return &PublicHandler{Reservations: res, Events: ev, Products: prod, Services: svc, Sender: sender}
}

// CreateReservation handles POST /v1/reservations: the public booking
// form. The row is created as pending; the customer hears back only when
// an administrator confirms or declines.
func (h *PublicHandler) CreateReservation(c echo.Context) error {
	var body struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		ReservationType string `json:"reservation_type"`
		ReservationDate string `json:"reservation_date"`
		ReservationTime string `json:"reservation_time"`
		PartySize       string `json:"party_size"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Name == "" || body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email required"})
	}
	if body.ReservationType == "" || body.ReservationDate == "" || body.ReservationTime == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reservation type, date and time required"})
	}

	res := model.Reservation{
		Name:            body.Name,
		Email:           body.Email,
		ReservationType: body.ReservationType,
		ReservationDate: body.ReservationDate,
		ReservationTime: body.ReservationTime,
		PartySize:       body.PartySize,
		SpecialRequests: strings.TrimSpace(body.SpecialRequests),
	}
	if p := strings.TrimSpace(body.Phone); p != "" {
		res.Phone = &p
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reservations.Create(ctx, &res); err != nil {
		c.Logger().Errorf("create reservation: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    res,
		"message": "Mulțumim pentru rezervare!",
	})
}

// ListEvents handles GET /v1/events and returns the active events.
func (h *PublicHandler) ListEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, events)
}

// RegisterForEvent handles POST /v1/events/:id/registrations. The signup
// row is stored first; the confirmation email is best-effort and its
// outcome is reported as email_sent, the way the site always behaved.
func (h *PublicHandler) RegisterForEvent(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var body struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Name == "" || body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !event.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	}

	reg := model.EventRegistration{
		EventID:         event.ID,
		Name:            body.Name,
		Email:           body.Email,
		SpecialRequests: strings.TrimSpace(body.SpecialRequests),
	}
	if p := strings.TrimSpace(body.Phone); p != "" {
		reg.Phone = &p
	}
	if err := h.Events.CreateRegistration(ctx, &reg); err != nil {
		c.Logger().Errorf("event registration: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	emailSent := h.sendEventEmail(c, event.Title, reg.Name, reg.Email)
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": reg, "email_sent": emailSent})
}

func (h *PublicHandler) sendEventEmail(c echo.Context, eventTitle, name, email string) bool {
	msg, err := mailer.Compose(&mailer.Request{
		Type:       mailer.TypeEvent,
		EventTitle: eventTitle,
		Name:       name,
		Email:      email,
	})
	if err != nil {
		c.Logger().Errorf("event email compose: %v", err)
		return false
	}
	if err := h.Sender.Send(c.Request().Context(), email, msg); err != nil {
		c.Logger().Errorf("event email send: %v", err)
		return false
	}
	return true
}

// ListProducts handles GET /v1/products with an optional ?category filter.
func (h *PublicHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.List(ctx, c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, products)
}

// ListServices handles GET /v1/services.
func (h *PublicHandler) ListServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	services, err := h.Services.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, services)
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/handler"
	"github.com/cutie-cafe/cutie-backend/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware at all.
// Currently that is only the health check used by uptime monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterMail registers the SPA-facing mail endpoints under /api. Their
// paths and response shapes predate the /v1 API and are kept verbatim so
// the deployed SPA needs no changes.
func RegisterMail(e *echo.Echo, m *handler.MailHandler, n *handler.NewsletterHandler) {
	e.POST("/api/send-reservation-email", m.SendReservationEmail)
	e.POST("/api/send-newsletter", n.SendNewsletter)
}

// RegisterPublic registers the unauthenticated endpoints: the booking
// form, event browsing/signup, catalog reads and newsletter subscribe.
// The write endpoints sit behind the rate limiter; the reads sit behind
// the response cache. Either middleware may be a pass-through when Redis
// is not available.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, n *handler.NewsletterHandler,
	limit echo.MiddlewareFunc, cache echo.MiddlewareFunc) {
	e.POST("/v1/reservations", p.CreateReservation, limit)
	e.POST("/v1/events/:id/registrations", p.RegisterForEvent, limit)
	e.POST("/v1/newsletter/subscribe", n.Subscribe, limit)

	e.GET("/v1/events", p.ListEvents, cache)
	e.GET("/v1/products", p.ListProducts, cache)
	e.GET("/v1/services", p.ListServices, cache)
}

// RegisterAdmin registers login plus the protected back-office endpoints.
// Everything under /v1/admin requires a valid access token with the
// ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, ad *handler.AdminHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/reservations", ad.ListReservations)
	g.POST("/reservations/:id/confirm", ad.ConfirmReservation)
	g.POST("/reservations/:id/decline", ad.DeclineReservation)

	g.GET("/subscribers", ad.ListSubscribers)

	g.GET("/events", ad.ListAllEvents)
	g.POST("/events", ad.CreateEvent)
	g.PUT("/events/:id", ad.UpdateEvent)
	g.DELETE("/events/:id", ad.DeleteEvent)

	g.POST("/products", ad.CreateProduct)
	g.PUT("/products/:id", ad.UpdateProduct)
	g.DELETE("/products/:id", ad.DeleteProduct)

	g.POST("/services", ad.CreateService)
	g.PUT("/services/:id", ad.UpdateService)
	g.DELETE("/services/:id", ad.DeleteService)
}

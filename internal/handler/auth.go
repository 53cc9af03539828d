package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/config"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
	"github.com/cutie-cafe/cutie-backend/internal/utils"
)

// AuthHandler serves admin login. There is no self-service registration:
// accounts are seeded into the admins table out of band.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

// NewAuthHandler wires the login endpoint.
func NewAuthHandler(cfg config.Config, admins *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: admins}
}

// Login handles POST /v1/auth/login: verify credentials and return a
// short-lived access token. Unknown emails and bad passwords answer
// identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, admin.ID, "ADMIN", h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"admin":   echo.Map{"id": admin.ID, "email": admin.Email},
		"token":   access.Token,
		"expires": access.Exp,
	})
}

package http

import (
	"net/http"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	result, err := s.h.Authenticate.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTokens(result))
}

// Refresh handles POST /api/v1/auth/refresh.
func (s *Server) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokenCommand(req.RefreshToken)
	if err != nil {
		return err
	}
	result, err := s.h.RefreshToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTokens(result))
}

// GetProfile handles GET /api/v1/me.
func (s *Server) GetProfile(c echo.Context) error {
	query, err := queries.NewGetOwnerQueryByEmail(currentClaims(c).Email)
	if err != nil {
		return err
	}
	item, err := s.h.GetOwner.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwner(item))
}

// ChangePassword handles PUT /api/v1/me/password.
func (s *Server) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeSecretCommand(currentClaims(c).Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if err = s.h.ChangeSecret.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

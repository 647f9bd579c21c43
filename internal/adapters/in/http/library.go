package http

import (
	"net/http"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetLibrary handles GET /api/v1/me/library.
func (s *Server) GetLibrary(c echo.Context) error {
	paging, err := pagingParams(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOwnerLibraryQuery(paging, currentClaims(c).Email)
	if err != nil {
		return err
	}

	page, err := s.h.GetOwnerLibrary.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(page, toLibraryItem))
}

// AcquireGame handles POST /api/v1/me/library.
func (s *Server) AcquireGame(c echo.Context) error {
	var req AcquireRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	gameID, err := kernel.UUIDFromBytes(req.GameID[:])
	if err != nil {
		return errs.NewValidationError("gameId is not a valid uuid")
	}

	cmd, err := commands.NewAcquireGameCommand(currentClaims(c).Email, gameID)
	if err != nil {
		return err
	}
	acquired, err := s.h.AcquireGame.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAcquiredGame(acquired))
}

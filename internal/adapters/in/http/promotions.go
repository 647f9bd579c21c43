package http

import (
	"net/http"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SearchPromotions handles
// GET /api/v1/promotions?gameId=&minPrice=&maxPrice=&active=&page=&size=.
func (s *Server) SearchPromotions(c echo.Context) error {
	paging, err := pagingParams(c)
	if err != nil {
		return err
	}

	var filter queries.PromotionFilter
	if filter.GameID, err = optionalUUID(c, "gameId"); err != nil {
		return err
	}
	if filter.MinPrice, err = optionalDecimal(c, "minPrice"); err != nil {
		return err
	}
	if filter.MaxPrice, err = optionalDecimal(c, "maxPrice"); err != nil {
		return err
	}
	if filter.Active, err = optionalBool(c, "active"); err != nil {
		return err
	}

	query, err := queries.NewSearchPromotionsQuery(paging, filter)
	if err != nil {
		return err
	}
	page, err := s.h.SearchPromotions.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(page, func(item queries.PromotionListItem) Promotion {
		return toPromotion(item.PromotionView, item.GameName)
	}))
}

// CreatePromotion handles POST /api/v1/promotions.
func (s *Server) CreatePromotion(c echo.Context) error {
	var req PromotionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	gameID, err := kernel.UUIDFromBytes(req.GameID[:])
	if err != nil {
		return errs.NewValidationError("gameId is not a valid uuid")
	}

	cmd, err := commands.NewCreatePromotionCommand(gameID, req.Price, req.StartsAt, req.EndsAt)
	if err != nil {
		return err
	}
	if err = s.h.CreatePromotion.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: cmd.PromotionID().Bytes()})
}

// AlterPromotion handles PUT /api/v1/promotions/:id.
func (s *Server) AlterPromotion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req AlterPromotionRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAlterPromotionCommand(id, req.Price, req.StartsAt, req.EndsAt)
	if err != nil {
		return err
	}
	if err = s.h.AlterPromotion.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePromotionStatus handles PUT /api/v1/promotions/:id/status.
func (s *Server) ChangePromotionStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePromotionStatusCommand(id, *req.Active)
	if err != nil {
		return err
	}
	if err = s.h.ChangePromotionStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemovePromotion handles DELETE /api/v1/promotions/:id.
func (s *Server) RemovePromotion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemovePromotionCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.RemovePromotion.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

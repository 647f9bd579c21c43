package http

import (
	"net/http"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/domain/model/game"

	"github.com/labstack/echo/v4"
)

// SearchGames handles GET /api/v1/games?name=&active=&page=&size=.
func (s *Server) SearchGames(c echo.Context) error {
	paging, err := pagingParams(c)
	if err != nil {
		return err
	}
	active, err := optionalBool(c, "active")
	if err != nil {
		return err
	}
	query, err := queries.NewSearchGamesQuery(paging, optionalString(c, "name"), active)
	if err != nil {
		return err
	}

	page, err := s.h.SearchGames.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(page, toGame))
}

// GetGame handles GET /api/v1/games/:id.
func (s *Server) GetGame(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetGameQuery(id)
	if err != nil {
		return err
	}

	details, err := s.h.GetGame.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGameDetails(details))
}

// CreateGame handles POST /api/v1/games.
func (s *Server) CreateGame(c echo.Context) error {
	var req GameRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateGameCommand(req.Name, req.profile(), req.Price)
	if err != nil {
		return err
	}
	if err = s.h.CreateGame.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: cmd.GameID().Bytes()})
}

// AlterGame handles PUT /api/v1/games/:id.
func (s *Server) AlterGame(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req GameRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAlterGameCommand(id, req.Name, req.profile(), req.Price)
	if err != nil {
		return err
	}
	if err = s.h.AlterGame.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeGameStatus handles PUT /api/v1/games/:id/status.
func (s *Server) ChangeGameStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req StatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeGameStatusCommand(id, *req.Active)
	if err != nil {
		return err
	}
	if err = s.h.ChangeGameStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveGame handles DELETE /api/v1/games/:id.
func (s *Server) RemoveGame(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveGameCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.RemoveGame.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r GameRequest) profile() game.Profile {
	return game.Profile{
		Description: r.Description,
		Publisher:   r.Publisher,
		ReleaseDate: r.ReleaseDate,
	}
}

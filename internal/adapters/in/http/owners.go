package http

import (
	"net/http"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// RegisterOwner handles POST /api/v1/owners. Registration is public.
func (s *Server) RegisterOwner(c echo.Context) error {
	var req RegisterOwnerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterOwnerCommand(req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	registered, err := s.h.Accounts.Register(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, Owner{
		ID:        registered.ID().Bytes(),
		Name:      registered.Name(),
		Email:     registered.Email(),
		CreatedAt: registered.CreatedAt(),
	})
}

// SearchOwners handles GET /api/v1/owners?filter=&page=&size=.
func (s *Server) SearchOwners(c echo.Context) error {
	paging, err := pagingParams(c)
	if err != nil {
		return err
	}
	query, err := queries.NewSearchOwnersQuery(paging, optionalString(c, "filter"))
	if err != nil {
		return err
	}

	page, err := s.h.SearchOwners.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(page, toOwner))
}

// GetOwner handles GET /api/v1/owners/:id.
func (s *Server) GetOwner(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOwnerQueryByID(id)
	if err != nil {
		return err
	}

	item, err := s.h.GetOwner.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwner(item))
}

// RemoveOwner handles DELETE /api/v1/owners/:id.
func (s *Server) RemoveOwner(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveOwnerCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.Accounts.Remove(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetRoles handles PUT /api/v1/owners/:id/roles.
func (s *Server) SetRoles(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req SetRolesRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	roles := make([]ports.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, ports.Role(r))
	}
	cmd, err := commands.NewSetRolesCommand(id, roles)
	if err != nil {
		return err
	}

	if err = s.h.Accounts.SetRoles(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

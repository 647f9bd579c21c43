// Package http exposes the store over a JSON API built on echo.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gamestore/internal/core/application/saga"
	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	Accounts *saga.AccountCoordinator
	Identity ports.IdentityGateway

	CreateGame            commands.CreateGameCommandHandler
	AlterGame             commands.AlterGameCommandHandler
	ChangeGameStatus      commands.ChangeGameStatusCommandHandler
	RemoveGame            commands.RemoveGameCommandHandler
	CreatePromotion       commands.CreatePromotionCommandHandler
	AlterPromotion        commands.AlterPromotionCommandHandler
	ChangePromotionStatus commands.ChangePromotionStatusCommandHandler
	RemovePromotion       commands.RemovePromotionCommandHandler
	AcquireGame           commands.AcquireGameCommandHandler
	Authenticate          commands.AuthenticateCommandHandler
	RefreshToken          commands.RefreshTokenCommandHandler
	ChangeSecret          commands.ChangeSecretCommandHandler

	SearchGames      queries.SearchGamesQueryHandler
	GetGame          queries.GetGameQueryHandler
	SearchPromotions queries.SearchPromotionsQueryHandler
	SearchOwners     queries.SearchOwnersQueryHandler
	GetOwner         queries.GetOwnerQueryHandler
	GetOwnerLibrary  queries.GetOwnerLibraryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h    Handlers
	echo *echo.Echo
	log  *logger.Logger
}

func NewServer(h Handlers, log *logger.Logger) *Server {
	s := &Server{
		h:   h,
		log: log.With("component", "http"),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.ERROR)
	e.Validator = newRequestValidator()
	e.JSONSerializer = jsonSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}
	e.HTTPErrorHandler = errorHandler(s.log)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	s.echo = e
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	authed := requireAuth(s.h.Identity)
	admin := requireRole(ports.RoleAdmin)

	api.POST("/auth/login", s.Login)
	api.POST("/auth/refresh", s.Refresh)
	api.POST("/owners", s.RegisterOwner)

	owners := api.Group("/owners", authed, admin)
	owners.GET("", s.SearchOwners)
	owners.GET("/:id", s.GetOwner)
	owners.DELETE("/:id", s.RemoveOwner)
	owners.PUT("/:id/roles", s.SetRoles)

	me := api.Group("/me", authed)
	me.GET("", s.GetProfile)
	me.PUT("/password", s.ChangePassword)
	me.GET("/library", s.GetLibrary)
	me.POST("/library", s.AcquireGame)

	games := api.Group("/games", authed)
	games.GET("", s.SearchGames)
	games.GET("/:id", s.GetGame)
	games.POST("", s.CreateGame, admin)
	games.PUT("/:id", s.AlterGame, admin)
	games.PUT("/:id/status", s.ChangeGameStatus, admin)
	games.DELETE("/:id", s.RemoveGame, admin)

	promotions := api.Group("/promotions", authed)
	promotions.GET("", s.SearchPromotions)
	promotions.POST("", s.CreatePromotion, admin)
	promotions.PUT("/:id", s.AlterPromotion, admin)
	promotions.PUT("/:id/status", s.ChangePromotionStatus, admin)
	promotions.DELETE("/:id", s.RemovePromotion, admin)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.log.Info("http server listening", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits up to timeout for the
// in-flight ones.
func (s *Server) Shutdown(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/routes"
	"github.com/campushub/campushub/internal/bootstrap"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	deps       *bootstrap.Dependencies
	httpServer *http.Server
}

// New builds the gin engine with middleware and routes over the dependencies
func New(deps *bootstrap.Dependencies) *Server {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.RegisterRoutes(router, deps.Controllers, deps.AuthMiddleware)

	return &Server{
		deps: deps,
		httpServer: &http.Server{
			Addr:         ":" + deps.Config.Server.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests and closes resources
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info().Msg("Shutting down HTTP server")

	err := s.httpServer.Shutdown(ctx)
	s.deps.Close()
	return err
}

// Package server exposes the inverse solver over HTTP.
//
// The routes are presentation-only wrappers around [inverse.Solver]:
// no route carries algorithmic logic of its own.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/CodyTVWeber/inversemod/inverse"
)

// Server wires the solver to HTTP routes.
type Server struct {
	solver *inverse.Solver
	logger *zap.Logger
	router *gin.Engine
}

// New creates a new Server around the given solver.
func New(solver *inverse.Solver, logger *zap.Logger) *Server {
	s := &Server{
		solver: solver,
		logger: logger,
		router: gin.New(),
	}

	s.router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	s.router.GET("/inverse-mod", s.handleSteps)
	s.router.GET("/inverse-mod-z", s.handleResult)
	s.router.GET("/inverse-mod-explanation", s.handleExplanation)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving", zap.String("addr", addr))
	return s.router.Run(addr)
}

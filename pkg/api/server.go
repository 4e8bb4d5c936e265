// Package api serves the HTTP surface: pool health, the web-viewer
// case endpoint with its static frontend, and the history-bootstrap
// callbacks used by the collaborator service.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/history"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/queue"
	"github.com/casemine/casemine/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cases    *services.CaseService
	admins   *services.AdminService
	pool     *queue.WorkerPool
	importer *history.Importer
	idx      *index.Provider
	cfg      *config.Config

	httpSrv *http.Server
}

// NewServer creates a new API server.
func NewServer(
	cases *services.CaseService,
	admins *services.AdminService,
	pool *queue.WorkerPool,
	importer *history.Importer,
	idx *index.Provider,
	cfg *config.Config,
) *Server {
	if cases == nil || admins == nil || pool == nil || importer == nil || idx == nil || cfg == nil {
		panic("NewServer: all dependencies must be non-nil")
	}
	return &Server{
		cases:    cases,
		admins:   admins,
		pool:     pool,
		importer: importer,
		idx:      idx,
		cfg:      cfg,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/api/health", s.health)
	r.GET("/api/cases/:id", s.getCase)

	hist := r.Group("/history")
	hist.POST("/link-token", s.createLinkToken)
	hist.POST("/qr-ready", s.qrReady)
	hist.POST("/cases", s.importCases)

	if s.cfg.Images.RootDir != "" {
		// Evidence image blobs for the web viewer. gin's static handler
		// rejects path traversal.
		r.Static("/static", s.cfg.Images.RootDir)
	}
	return r
}

// Start begins serving in a goroutine.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:    s.cfg.Server.ListenAddr,
		Handler: s.Router(),
	}

	go func() {
		slog.Info("API server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("API server failed", "error", err)
		}
	}()
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	slog.Info("Stopping API server")
	return s.httpSrv.Shutdown(ctx)
}

// requestLogger logs one line per request via slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

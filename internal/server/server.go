// Package server exposes the relay over HTTP.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/diogo/vertexchat/internal/config"
	"github.com/diogo/vertexchat/internal/models"
	"github.com/diogo/vertexchat/internal/relay"
)

// Server owns the HTTP routes and the relay service behind them.
type Server struct {
	cfg    config.Config
	svc    *relay.Service
	log    zerolog.Logger
	engine *gin.Engine
	server *http.Server
}

// New constructs a Server and registers its routes.
func New(cfg config.Config, svc *relay.Service, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		svc:    svc,
		log:    log,
		engine: engine,
	}
	s.registerRoutes()

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.Use(s.requestLogger())

	api := s.engine.Group("/api")
	{
		api.POST("/chat", s.handleChat)
	}

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Optional prebuilt UI bundle at the root path.
	if dir := s.cfg.StaticDir; dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			s.engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
			s.log.Info().Str("dir", dir).Msg("serving static UI bundle")
		} else {
			s.log.Warn().Str("dir", dir).Msg("static dir not found; UI serving disabled")
		}
	}
}

// handleChat answers POST /api/chat. Application failures are embedded
// in the reply text with the same 200 status as a real answer; only a
// body that fails to parse is rejected.
func (s *Server) handleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply := s.svc.Answer(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply.Flatten()})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Next()

		s.log.Info().
			Str("req_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or a
// termination signal arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			s.log.Info().Msg("received interrupt signal, shutting down gracefully...")
		case <-egCtx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("server shutdown error")
			return err
		}
		s.log.Info().Msg("server shutdown complete")
		return nil
	})

	eg.Go(func() error {
		s.log.Info().Str("addr", s.cfg.Addr).Str("model", s.cfg.Model).Msg("starting chat relay server")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("server listen error")
			return err
		}
		return nil
	})

	return eg.Wait()
}

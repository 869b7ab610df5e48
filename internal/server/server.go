package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/danmuck/advent2024/internal/observability"
	"github.com/danmuck/advent2024/internal/output"
	"github.com/danmuck/advent2024/internal/puzzle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// MaxInputBytes caps the request body accepted by the solve endpoint.
const MaxInputBytes = 8 << 20

var ErrPuzzleNotFound = errors.New("puzzle not found")

// Server exposes the solver registry over HTTP.
type Server struct {
	Addr     string
	Appeared time.Time

	registry *puzzle.Registry
	runner   *puzzle.Runner
	logger   zerolog.Logger
	router   *gin.Engine
}

func New(addr string, corsOrigins []string, registry *puzzle.Registry, runner *puzzle.Runner, logger zerolog.Logger) *Server {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		Addr:     addr,
		Appeared: time.Now(),
		registry: registry,
		runner:   runner,
		logger:   logger,
		router:   r,
	}
	s.registerRoutes()
	return s
}

// Handler returns the router for use with httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": "advent",
			"puzzles": s.registry.Len(),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/puzzles", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"puzzles": listPuzzles(s.registry)})
	})

	s.router.POST("/puzzles/:id/solve", func(c *gin.Context) {
		solver, err := s.resolve(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Set(observability.PuzzleContextKey, solver.Metadata().ID)

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxInputBytes))
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}

		report := s.runner.Solve(c.Request.Context(), solver, string(body))
		s.logger.Info().
			Str("puzzle", report.ID).
			Bool("part_one_ok", report.PartOne.OK()).
			Bool("part_two_ok", report.PartTwo.OK()).
			Msg("puzzle solved over http")
		c.JSON(http.StatusOK, output.NewReportView(report))
	})
}

// resolve accepts either a registry id ("day02") or a bare day number ("2").
func (s *Server) resolve(id string) (puzzle.Solver, error) {
	if solver, ok := s.registry.Resolve(id); ok {
		return solver, nil
	}
	if day, err := strconv.Atoi(id); err == nil {
		if solver, ok := s.registry.ResolveDay(day); ok {
			return solver, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPuzzleNotFound, id)
}

// Serve listens on Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info().Str("addr", s.Addr).Msg("server started")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errc
		return nil
	}
}

type PuzzleInfo struct {
	ID          string `json:"id"`
	Day         int    `json:"day"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func listPuzzles(registry *puzzle.Registry) []PuzzleInfo {
	metas := registry.ListMetadata()
	list := make([]PuzzleInfo, 0, len(metas))
	for _, meta := range metas {
		list = append(list, PuzzleInfo{
			ID:          meta.ID,
			Day:         meta.Day,
			Name:        meta.Name,
			Description: meta.Description,
		})
	}
	return list
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

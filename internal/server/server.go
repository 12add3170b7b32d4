// Package server exposes the latest metrics snapshot and the live sensor
// list over a small read-only HTTP API, for status bars and scripts that
// poll JSON instead of running the TUI.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goujonmael/resmon/internal/sampler"
	"github.com/goujonmael/resmon/internal/sensor"
)

// Source supplies the data served by the API. *sampler.Sampler satisfies
// it indirectly through Server's sampling loop; tests plug in a fake.
type Source interface {
	Snapshot() sampler.Snapshot
	Readings() []sensor.Reading
}

// sensorJSON is one entry of the /sensors response.
type sensorJSON struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Temp     float64 `json:"temperature_celsius"`
}

// NewRouter builds the API router over a snapshot source.
func NewRouter(src Source, logger *zap.SugaredLogger) chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.StripSlashes)
	r.Use(logMiddleware(logger))

	r.Get("/snapshot", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, src.Snapshot())
	})

	r.Get("/sensors", func(w http.ResponseWriter, req *http.Request) {
		classified := sensor.ClassifyAll(src.Readings())
		out := make([]sensorJSON, 0, len(classified))
		for _, c := range classified {
			out = append(out, sensorJSON{
				Category: string(c.Category),
				Label:    c.Label,
				Temp:     c.Temp,
			})
		}
		writeJSON(w, out)
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func logMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Infow("request",
				"method", r.Method,
				"uri", r.RequestURI,
				"duration", time.Since(start),
			)
		})
	}
}

// Server samples on a fixed interval and serves the API.
type Server struct {
	addr     string
	interval time.Duration
	smp      *sampler.Sampler
	logger   *zap.SugaredLogger
}

// New creates a serve-mode server around a sampler.
func New(addr string, interval time.Duration, smp *sampler.Sampler, logger *zap.SugaredLogger) *Server {
	if interval <= 0 {
		interval = time.Second
	}
	return &Server{addr: addr, interval: interval, smp: smp, logger: logger}
}

// Run samples until ctx is done while serving HTTP on the configured
// address. The sampler is only touched from this goroutine; handlers read
// through the guarded source.
func (s *Server) Run(ctx context.Context) error {
	src := newGuardedSource()
	src.update(s.smp.Sample(), s.smp.Readings())

	httpServer := &http.Server{
		Addr:    s.addr,
		Handler: NewRouter(src, s.logger),
	}

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
				return
			case <-ticker.C:
				src.update(s.smp.Sample(), s.smp.Readings())
			}
		}
	}()

	s.logger.Infow("serving metrics", "addr", s.addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

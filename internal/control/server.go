// Package control exposes a running player over HTTP: parameter reads and
// writes, the scale table and manual strums. Every write lands in the lock-free
// parameter store and takes effect at the next audio block.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	strummer "github.com/cbegin/strummer-go"
	"github.com/cbegin/strummer-go/internal/scale"
)

// Engine is the part of a player the server drives.
type Engine interface {
	ParamValues() map[string]float64
	SetParam(name string, v float64) error
	PressUp() bool
	PressDown() bool
	Stats() (blocks, skipped uint64)
}

// Config holds server configuration
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Server is the HTTP control surface
type Server struct {
	config Config
	router *chi.Mux
	engine Engine
	logger *slog.Logger
}

// New creates a new server
func New(cfg Config, engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{
		config: cfg,
		router: chi.NewRouter(),
		engine: engine,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/params", s.handleParams)
	r.Get("/params/{name}", s.handleParam)
	r.Put("/params/{name}", s.handleSetParam)
	r.Get("/scales", s.handleScales)
	r.Post("/trigger/{dir}", s.handleTrigger)
	r.Get("/stats", s.handleStats)
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("control server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down control server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.ParamValues())
}

type paramValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func (s *Server) handleParam(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(chi.URLParam(r, "name"))
	v, ok := s.engine.ParamValues()[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown parameter "+name)
		return
	}
	writeJSON(w, http.StatusOK, paramValue{Name: name, Value: v})
}

func (s *Server) handleSetParam(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(chi.URLParam(r, "name"))
	var body struct {
		Value *float64 `json:"value"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<10)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		writeError(w, http.StatusBadRequest, `body must be {"value": <number>}`)
		return
	}
	if err := s.engine.SetParam(name, *body.Value); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, strummer.ErrUnknownParam) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	s.logger.Info("parameter set", slog.String("name", name), slog.Float64("value", *body.Value))
	writeJSON(w, http.StatusOK, paramValue{Name: name, Value: *body.Value})
}

type scaleInfo struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Exotic    bool      `json:"exotic"`
	Intervals []float64 `json:"intervals"`
}

func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	out := make([]scaleInfo, 0, scale.Count)
	for id := 0; id < scale.Count; id++ {
		sc, _ := scale.Resolve(id)
		iv := make([]float64, sc.Len())
		for i := range iv {
			iv[i] = sc.At(i)
		}
		out = append(out, scaleInfo{ID: id, Name: scale.Name(id), Exotic: scale.IsExotic(id), Intervals: iv})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	var ok bool
	switch dir := chi.URLParam(r, "dir"); dir {
	case "up":
		ok = s.engine.PressUp()
	case "down":
		ok = s.engine.PressDown()
	default:
		writeError(w, http.StatusNotFound, "trigger direction must be up or down")
		return
	}
	if !ok {
		writeError(w, http.StatusTooManyRequests, "trigger queue full")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	blocks, skipped := s.engine.Stats()
	writeJSON(w, http.StatusOK, map[string]uint64{"blocks": blocks, "skipped": skipped})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

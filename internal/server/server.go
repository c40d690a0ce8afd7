// Package server exposes conversion over HTTP.
//
// Routes:
//
//	GET  /health   liveness probe
//	POST /convert  org text in, HTML fragment, HTML page or PDF out
//	POST /dump     org text in, structural tree notation out
//
// The request body is either raw org text, with options in the query string,
// or a JSON object when Content-Type is application/json.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	org2html "github.com/alnah/go-org2html"
)

// DefaultMaxBodyBytes bounds request bodies when Options.MaxBodyBytes is zero.
const DefaultMaxBodyBytes int64 = 4 << 20

// Converter converts one input. *org2html.Converter satisfies it.
type Converter interface {
	Convert(ctx context.Context, input org2html.Input) (*org2html.ConvertResult, error)
}

// Pool hands out converters to concurrent requests.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
}

// Options configures a Server.
type Options struct {
	// MaxBodyBytes bounds request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// DumpOptions are passed to org2html.Dump for /dump requests.
	DumpOptions []org2html.Option
}

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	pool   Pool
	log    *slog.Logger
	opts   Options
}

// New creates a server that converts with converters from pool.
func New(pool Pool, log *slog.Logger, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{pool: pool, log: log, opts: opts}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/convert", s.handleConvert)
	r.Post("/dump", s.handleDump)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

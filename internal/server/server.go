package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/digital-allies/allies/internal/assets"
	"github.com/digital-allies/allies/internal/live"
	"github.com/digital-allies/allies/internal/panel"
)

// liveEndpoint is the WebSocket path, relative to the page.
const liveEndpoint = "ws"

// DefaultRequestTimeout bounds every request except the live socket.
const DefaultRequestTimeout = 60 * time.Second

// Config holds server configuration.
type Config struct {
	Port           int
	BasePath       string        // asset base; an absolute path also becomes the mount prefix
	AllowAll       bool          // allow all CORS and WebSocket origins (dev mode)
	RequestTimeout time.Duration // zero means DefaultRequestTimeout
}

// Server serves the live panel.
type Server struct {
	cfg        Config
	content    panel.Content
	prefix     string
	live       *live.Handler
	log        zerolog.Logger
	router     chi.Router
	timed      chi.Router
	httpServer *http.Server
}

// New creates a server that renders content.
func New(cfg Config, content panel.Content, log zerolog.Logger) *Server {
	opts := []live.Option{live.WithLogger(log)}
	if cfg.AllowAll {
		opts = append(opts, live.WithAllowAllOrigins())
	}

	s := &Server{
		cfg:     cfg,
		content: content,
		prefix:  assets.MountPrefix(cfg.BasePath),
		live:    live.NewHandler(content, opts...),
		log:     log,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  &accessLog{log: s.log},
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	timeout := s.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	routes := func(r chi.Router) {
		s.timed = r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(timeout))
			r.Get("/", s.handleIndex)
			r.Get("/assets/*", s.handleAsset)
			r.Get("/healthz", s.handleHealth)
		})
		// The socket lives as long as the page, so it stays outside the timeout.
		r.Get("/"+liveEndpoint, s.live.ServeHTTP)
	}

	if s.prefix == "" {
		routes(r)
	} else {
		r.Route(s.prefix, routes)
	}

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Relative asset and socket URLs only resolve under the trailing slash.
	if s.prefix != "" && r.URL.Path == s.prefix {
		http.Redirect(w, r, s.prefix+"/", http.StatusMovedPermanently)
		return
	}

	var buf bytes.Buffer
	p := panel.New(s.content)
	if err := p.Render(&buf, panel.RenderOptions{BasePath: s.cfg.BasePath, LiveURL: liveEndpoint}); err != nil {
		s.log.Error().Err(err).Msg("server: render index")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name == "" || !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, assets.FS(), name)
}

// healthResponse is the JSON response for the health endpoint.
type healthResponse struct {
	Status   string `json:"status"`
	Sessions int64  `json:"sessions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{Status: "ok", Sessions: s.live.Sessions()})
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Timed returns the router group whose routes run under the request timeout.
func (s *Server) Timed() chi.Router { return s.timed }

// Live returns the WebSocket session handler.
func (s *Server) Live() *live.Handler { return s.live }

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info().Str("addr", addr).Str("prefix", s.prefix+"/").Msg("allies server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// accessLog adapts zerolog to chi's request logger.
type accessLog struct {
	log zerolog.Logger
}

func (a *accessLog) Print(v ...interface{}) {
	a.log.Info().Msg(fmt.Sprint(v...))
}

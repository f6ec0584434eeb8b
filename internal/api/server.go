package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dgallion1/ragview/internal/assets"
	"github.com/dgallion1/ragview/internal/config"
	"github.com/dgallion1/ragview/internal/nav"
	"github.com/dgallion1/ragview/internal/ragapi"
	"github.com/dgallion1/ragview/internal/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ChunkSource fetches retrieved chunks from the RAG backend.
type ChunkSource interface {
	GetChunkContents(ctx context.Context, dataSourceID int64, chunkID string) (*ragapi.ChunkContents, error)
}

// Server is the HTTP server for ragview.
type Server struct {
	router    chi.Router
	chunks    ChunkSource
	navigator nav.Navigator
	views     *views.Renderer
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(chunks ChunkSource, navigator nav.Navigator, renderer *views.Renderer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		chunks:    chunks,
		navigator: navigator,
		views:     renderer,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(assets.FS())))

	// Pages.
	r.Get("/", s.handleGettingStarted)
	r.Post("/getting-started", s.handleGetStarted)
	r.Get("/data_sources/{dataSourceID}/empty", s.handleNoKnowledgeBase)
	r.Get("/data_sources/{dataSourceID}/chunks/{chunkID}", s.handleChunk)
	r.Get("/preview", s.handlePreviewForm)
	r.Post("/preview", s.handlePreview)

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		if s.cfg.RagviewAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.RagviewAPIKey, s.log))
		}
		r.Get("/data_sources/{dataSourceID}/chunks/{chunkID}/metadata", s.handleChunkMetadata)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, http.StatusNotFound, "page not found")
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// render writes a page, falling back to a plain 500 if the template fails.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	if err := s.views.RenderHTTP(w, status, page, data); err != nil {
		s.log.Error("render failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int, msg string) {
	s.render(w, status, views.PageError, views.NewErrorPage(status, msg))
}

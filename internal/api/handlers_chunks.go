package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dgallion1/ragview/internal/metadata"
	"github.com/dgallion1/ragview/internal/ragapi"
	"github.com/dgallion1/ragview/internal/views"
	"github.com/go-chi/chi/v5"
)

// dataSourceID parses the {dataSourceID} URL parameter, writing a 400 page
// when it is not a positive integer.
func (s *Server) dataSourceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "dataSourceID"), 10, 64)
	if err != nil || id <= 0 {
		s.renderError(w, http.StatusBadRequest, "invalid data source id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	dsID, ok := s.dataSourceID(w, r)
	if !ok {
		return
	}
	chunkID := chi.URLParam(r, "chunkID")

	contents, err := s.chunks.GetChunkContents(r.Context(), dsID, chunkID)
	if err != nil {
		status, msg := s.backendFailure(err, dsID, chunkID)
		s.renderError(w, status, msg)
		return
	}

	s.render(w, http.StatusOK, views.PageChunk, views.NewChunkPage(dsID, chunkID, contents.Text, contents.Metadata))
}

// chunkMetadataResponse is the body of GET /api/.../metadata.
type chunkMetadataResponse struct {
	Metadata    metadata.ChunkMetadata    `json:"metadata"`
	HasMetadata bool                      `json:"has_metadata"`
	Breadcrumb  []metadata.BreadcrumbItem `json:"breadcrumb"`
}

func (s *Server) handleChunkMetadata(w http.ResponseWriter, r *http.Request) {
	dsID, err := strconv.ParseInt(chi.URLParam(r, "dataSourceID"), 10, 64)
	if err != nil || dsID <= 0 {
		jsonError(w, "invalid data source id", http.StatusBadRequest)
		return
	}
	chunkID := chi.URLParam(r, "chunkID")

	contents, err := s.chunks.GetChunkContents(r.Context(), dsID, chunkID)
	if err != nil {
		status, msg := s.backendFailure(err, dsID, chunkID)
		jsonError(w, msg, status)
		return
	}

	m := contents.Metadata
	resp := chunkMetadataResponse{
		Metadata:    m,
		HasMetadata: m.HasMetadata(),
		Breadcrumb:  m.Breadcrumb(),
	}
	if resp.Breadcrumb == nil {
		resp.Breadcrumb = []metadata.BreadcrumbItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// backendFailure maps a ragapi error to the status and message shown to
// the caller. Backend-side failures are logged; missing chunks are not.
func (s *Server) backendFailure(err error, dsID int64, chunkID string) (int, string) {
	var clientErr *ragapi.ClientError
	switch {
	case errors.Is(err, ragapi.ErrNotFound):
		return http.StatusNotFound, "chunk not found"
	case errors.As(err, &clientErr):
		return clientErr.Status, clientErr.Detail
	default:
		s.log.Warn("rag backend request failed", "data_source_id", dsID, "chunk_id", chunkID, "error", err)
		return http.StatusBadGateway, "the RAG backend is unavailable"
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/ragview/internal/chunker"
	"github.com/dgallion1/ragview/internal/parser"
	"github.com/dgallion1/ragview/internal/views"
)

const previewAction = "/preview"

func (s *Server) handlePreviewForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, views.PagePreview, views.NewPreviewPage(previewAction, parser.Extensions(), "", nil))
}

// handlePreview parses an uploaded document, chunks it and renders the
// metadata each chunk would carry.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.renderError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes))
			return
		}
		s.renderError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		s.renderError(w, http.StatusBadRequest, fmt.Sprintf("unsupported file type: %q", filepath.Ext(filename)))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		s.renderError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes))
		return
	}

	p, err := parser.ForFile(filename, parser.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext})
	if err != nil {
		s.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	tree, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Info("preview parse failed", "filename", filename, "error", err)
		s.renderError(w, http.StatusUnprocessableEntity, "could not parse document: "+err.Error())
		return
	}

	chunks := chunker.ChunkTree(tree, s.chunkConfig(r))
	page := views.NewPreviewPage(previewAction, parser.Extensions(), filename, chunks)
	s.render(w, http.StatusOK, views.PagePreview, page)
}

// chunkConfig applies optional chunk_size and overlap form overrides.
func (s *Server) chunkConfig(r *http.Request) chunker.Config {
	cfg := chunker.Config{
		ChunkSize:    s.cfg.DefaultChunkSize,
		ChunkOverlap: s.cfg.DefaultChunkOverlap,
		MinChunk:     s.cfg.MinChunk,
	}
	if v := r.FormValue("chunk_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ChunkSize = n
		}
	}
	if v := r.FormValue("overlap"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ChunkOverlap = n
		}
	}
	return cfg
}

func sanitizeFilename(name string) string {
	// Browsers on Windows may send a full path.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "/" {
		name = "unnamed"
	}
	return name
}

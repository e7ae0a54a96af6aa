package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/msomdec/inkwell/internal/domain"
	"github.com/msomdec/inkwell/internal/service"
)

const maxUploadMemory = 10 << 20 // 10MB

// UploadHandler handles image upload and retrieval.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// HandleUpload stores a multipart image and returns its public path. The
// path is what callers persist as coverImageURL or profileImageURL.
// POST /upload (auth required), form field "file"
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadMemory+1))
	if err != nil {
		slog.Error("read upload", "error", err)
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	// Sniff when the client declared nothing useful.
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	path, err := h.uploads.Store(r.Context(), header.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("store upload", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"path": path,
	})
}

// HandleServe returns previously uploaded file bytes.
// GET /uploads/{file}
func (h *UploadHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	data, err := h.uploads.Get(r.Context(), r.PathValue("file"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			http.NotFound(w, r)
			return
		}
		slog.Error("serve upload", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Write(data)
}

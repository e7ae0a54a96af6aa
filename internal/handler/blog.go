package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/inkwell/internal/domain"
	"github.com/msomdec/inkwell/internal/service"
	"github.com/msomdec/inkwell/internal/view"
)

// BlogHandler handles blog and comment HTTP requests.
type BlogHandler struct {
	blogs *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// HandleGetAll returns every blog, newest first.
// GET /blog/getAll
func (h *BlogHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.List(r.Context())
	if err != nil {
		slog.Error("list blogs", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"blogs": toBlogDTOs(blogs),
	})
}

// HandleNewForm renders the blog creation form.
// GET /blog/add-new
func (h *BlogHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	fullName := ""
	if user := UserFromContext(r.Context()); user != nil {
		fullName = user.FullName
	}
	view.AddBlogPage(fullName).Render(r.Context(), w)
}

// HandleCreate persists a new blog owned by the caller.
// POST /blog/add-new (auth required)
// Request: {"title":"...","body":"...","coverImageURL":"..."}
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title         string `json:"title"`
		Body          string `json:"body"`
		CoverImageURL string `json:"coverImageURL"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	blog, err := h.blogs.Create(r.Context(), user.ID, req.Title, req.Body, req.CoverImageURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "title and body are required")
			return
		}
		slog.Error("create blog", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"blog": toBlogDTO(blog),
	})
}

// HandleMyBlogs returns the caller's blogs, newest first.
// GET /blog/myBlogs (auth required)
func (h *BlogHandler) HandleMyBlogs(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	blogs, err := h.blogs.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("list my blogs", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"myBlogs": toBlogDTOs(blogs),
	})
}

// HandleGet returns one blog with its creator resolved and its comments
// newest first, each with its author.
// GET /blog/{id}
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid blog id")
		return
	}

	blog, comments, err := h.blogs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "blog not found")
			return
		}
		slog.Error("get blog", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"blog":     toBlogDTO(blog),
		"comments": toCommentDTOs(comments),
	})
}

// HandleDelete removes a blog and cascades to its comments. No ownership
// check by observed design.
// DELETE /blog/{blogId}
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("blogId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid blog id")
		return
	}

	if err := h.blogs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "blog not found")
			return
		}
		slog.Error("delete blog", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "post deleted successfully",
	})
}

// HandleComment attaches a comment by the caller to the given blog id.
// POST /blog/comment/{blogId} (auth required)
// Request: {"comment":"..."}
func (h *BlogHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	blogID, err := strconv.ParseInt(r.PathValue("blogId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid blog id")
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.blogs.AddComment(r.Context(), user.ID, blogID, req.Comment)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "comment text cannot be empty")
			return
		}
		slog.Error("add comment", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "comment added",
		"comment": toCommentDTO(comment),
	})
}

// HandleRemoveAll wipes the blog collection. Ungated by observed design.
// GET /blog/remove
func (h *BlogHandler) HandleRemoveAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.blogs.DeleteAll(r.Context())
	if err != nil {
		slog.Error("delete all blogs", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"deleted": deleted,
	})
}

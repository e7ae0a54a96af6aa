package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/inkwell/internal/service"
	"github.com/msomdec/inkwell/internal/view"
)

// HomeHandler renders the public home page.
type HomeHandler struct {
	blogs *service.BlogService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(blogs *service.BlogService) *HomeHandler {
	return &HomeHandler{blogs: blogs}
}

// HandleHome renders the home page with the latest blogs.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	fullName := ""
	if user := UserFromContext(r.Context()); user != nil {
		fullName = user.FullName
	}

	blogs, err := h.blogs.List(r.Context())
	if err != nil {
		slog.Error("list blogs for home", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	titles := make([]string, len(blogs))
	for i, b := range blogs {
		titles[i] = b.Title
	}

	view.HomePage(fullName, titles).Render(r.Context(), w)
}

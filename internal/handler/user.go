package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/inkwell/internal/domain"
	"github.com/msomdec/inkwell/internal/service"
	"github.com/msomdec/inkwell/internal/view"
)

// UserHandler handles account and profile HTTP requests.
type UserHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService, cookieSecure bool) *UserHandler {
	return &UserHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleSignInForm renders the sign-in form.
// GET /user/signin
func (h *UserHandler) HandleSignInForm(w http.ResponseWriter, r *http.Request) {
	view.SignInPage().Render(r.Context(), w)
}

// HandleSignUpForm renders the sign-up form.
// GET /user/signup
func (h *UserHandler) HandleSignUpForm(w http.ResponseWriter, r *http.Request) {
	view.SignUpPage().Render(r.Context(), w)
}

// HandleSignUp registers a new account.
// POST /user/signup
// Request:  {"fullName":"...","email":"...","password":"..."}
func (h *UserHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.auth.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "user already exists, please try sign in")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "all fields are required")
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"message": "user created",
	})
}

// HandleSignIn verifies credentials, sets the token cookie, and returns the
// token in the body for API clients.
// POST /user/signin
// Request:  {"email":"...","password":"..."}
// Response: {"user": {"email":"...","token":"..."}}
func (h *UserHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "input field missing")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusBadRequest, "incorrect email or password")
			return
		}
		slog.Error("sign in user", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // matches token lifetime
	})

	writeSuccess(w, http.StatusOK, map[string]any{
		"user": map[string]string{
			"email": req.Email,
			"token": token,
		},
	})
}

// HandleGetUserDetails returns the caller's profile without credentials.
// GET /user/getUserDetails (auth required)
func (h *UserHandler) HandleGetUserDetails(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	writeSuccess(w, http.StatusOK, map[string]any{
		"userDetails": toUserDTO(user),
	})
}

// HandleUpdateProfile applies a single-field profile update. The body must
// carry exactly one of email, fullName, or profileImageURL.
// PUT /user/updateUserProfile (auth required)
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Email           *string `json:"email"`
		FullName        *string `json:"fullName"`
		ProfileImageURL *string `json:"profileImageURL"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update := domain.ProfileUpdate{
		Email:           req.Email,
		FullName:        req.FullName,
		ProfileImageURL: req.ProfileImageURL,
	}

	if _, err := h.auth.UpdateProfile(r.Context(), user.ID, update); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "exactly one of email, fullName, or profileImageURL must be set")
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "email already in use")
			return
		}
		slog.Error("update profile", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "profile updated",
	})
}

// HandleLogout clears the token cookie and sends the client home. Tokens are
// stateless; nothing is invalidated server-side.
// GET /user/logout
func (h *UserHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleListAll returns every registered user. Ungated by observed design.
// GET /user/all
func (h *UserHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"users": toUserDTOs(users),
	})
}

// HandleRemoveAll wipes the user collection. Ungated by observed design.
// GET /user/remove
func (h *UserHandler) HandleRemoveAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.auth.DeleteAllUsers(r.Context())
	if err != nil {
		slog.Error("delete all users", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"deleted": deleted,
	})
}

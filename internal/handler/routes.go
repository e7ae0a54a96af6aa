package handler

import (
	"net/http"

	"github.com/msomdec/inkwell/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
//
// Every route needing an identity goes through the same RequireAuth guard;
// nothing re-validates tokens inline.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, blogs *service.BlogService, uploads *service.UploadService, cookieSecure bool) {
	users := NewUserHandler(auth, cookieSecure)
	blog := NewBlogHandler(blogs)
	upload := NewUploadHandler(uploads)
	home := NewHomeHandler(blogs)

	// Burst budget for the credential endpoints, keyed by client IP.
	loginLimiter := service.NewTokenBucket(5, 20)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(home.HandleHome)))

	// User routes.
	mux.HandleFunc("GET /user/signin", users.HandleSignInForm)
	mux.HandleFunc("GET /user/signup", users.HandleSignUpForm)
	mux.Handle("POST /user/signup", RateLimit(loginLimiter, http.HandlerFunc(users.HandleSignUp)))
	mux.Handle("POST /user/signin", RateLimit(loginLimiter, http.HandlerFunc(users.HandleSignIn)))
	mux.Handle("GET /user/getUserDetails", RequireAuth(auth, http.HandlerFunc(users.HandleGetUserDetails)))
	mux.Handle("PUT /user/updateUserProfile", RequireAuth(auth, http.HandlerFunc(users.HandleUpdateProfile)))
	mux.HandleFunc("GET /user/logout", users.HandleLogout)
	mux.HandleFunc("GET /user/all", users.HandleListAll)
	mux.HandleFunc("GET /user/remove", users.HandleRemoveAll)

	// Blog routes.
	mux.HandleFunc("GET /blog/getAll", blog.HandleGetAll)
	mux.Handle("GET /blog/add-new", OptionalAuth(auth, http.HandlerFunc(blog.HandleNewForm)))
	mux.Handle("POST /blog/add-new", RequireAuth(auth, http.HandlerFunc(blog.HandleCreate)))
	mux.Handle("GET /blog/myBlogs", RequireAuth(auth, http.HandlerFunc(blog.HandleMyBlogs)))
	mux.HandleFunc("GET /blog/remove", blog.HandleRemoveAll)
	mux.HandleFunc("GET /blog/{id}", blog.HandleGet)
	mux.HandleFunc("DELETE /blog/{blogId}", blog.HandleDelete)
	mux.Handle("POST /blog/comment/{blogId}", RequireAuth(auth, http.HandlerFunc(blog.HandleComment)))

	// Uploads.
	mux.Handle("POST /upload", RequireAuth(auth, http.HandlerFunc(upload.HandleUpload)))
	mux.HandleFunc("GET /uploads/{file}", upload.HandleServe)
}

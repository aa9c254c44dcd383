package rest

import "net/http"

// Routes groups every handler the HTTP API exposes.
type Routes struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Users    *UserHandler
	Tasks    *TaskHandler
	Comments *CommentHandler
	Activity *ActivityHandler
	Stream   *StreamHandler

	// AuthLimit wraps the credential endpoints. Optional.
	AuthLimit func(http.Handler) http.Handler
	// Loaders installs per-request dataloaders on API routes.
	Loaders func(http.Handler) http.Handler
}

// NewRouter registers all endpoints on a Go 1.22 pattern mux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	limit := rt.AuthLimit
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}
	mux.Handle("POST /api/auth/register", limit(http.HandlerFunc(rt.Auth.Register)))
	mux.Handle("POST /api/auth/login", limit(http.HandlerFunc(rt.Auth.Login)))

	mux.HandleFunc("GET /api/users", rt.Users.List)
	mux.HandleFunc("GET /api/users/current", rt.Users.Current)

	api := func(h http.HandlerFunc) http.Handler {
		if rt.Loaders == nil {
			return h
		}
		return rt.Loaders(h)
	}
	mux.Handle("POST /api/tasks", api(rt.Tasks.Create))
	mux.Handle("GET /api/tasks", api(rt.Tasks.List))
	mux.Handle("GET /api/tasks/all", api(rt.Tasks.ListAll))
	mux.Handle("GET /api/tasks/priority", api(rt.Tasks.ListByPriority))
	mux.Handle("GET /api/tasks/{id}", api(rt.Tasks.Get))
	mux.Handle("PUT /api/tasks/{id}", api(rt.Tasks.Update))
	mux.Handle("DELETE /api/tasks/{id}", api(rt.Tasks.Delete))

	mux.HandleFunc("POST /api/tasks/{id}/comments", rt.Comments.Add)
	mux.HandleFunc("GET /api/tasks/{id}/comments", rt.Comments.List)
	mux.HandleFunc("PUT /api/tasks/comments/{commentId}", rt.Comments.Update)
	mux.HandleFunc("DELETE /api/tasks/comments/{commentId}", rt.Comments.Delete)

	mux.HandleFunc("GET /api/tasks/{id}/activities", rt.Activity.List)

	mux.HandleFunc("GET /ws", rt.Stream.Subscribe)

	return mux
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/middleware"
)

// NewRouter builds the full route table. Registration and login are
// public; everything else sits behind the auth middleware.
func NewRouter(auth *AuthHandler, tasks *TaskHandler, tokens *crypto.TokenManager) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/auth/register", auth.HandleRegister)
	r.Post("/auth/login", auth.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))

		r.Get("/auth/profile", auth.HandleProfile)
		r.Get("/auth/logout", auth.HandleLogout)

		r.Get("/tasks", tasks.HandleList)
		r.Post("/tasks/add", tasks.HandleCreate)
		r.Put("/tasks/{id}", tasks.HandleUpdate)
		r.Delete("/tasks/{id}", tasks.HandleDelete)
	})

	return r
}

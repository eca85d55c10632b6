package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-manager/internal/utils"
	"github.com/MKhiriev/recipe-manager/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.MessageResponse{Message: "Welcome to the Recipe Manager backend!"}, http.StatusOK)
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})
	router.Get("/api/version", h.version)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/api/recipes", func(r chi.Router) {
		// listing is preview-mode friendly: a missing or invalid token
		// degrades to the unscoped public view instead of failing
		r.With(h.optionalAuth).Get("/", h.listRecipes)
		r.Get("/{id}", h.getRecipe)

		r.With(h.auth).Post("/", h.createRecipe)
		r.With(h.auth).Put("/{id}", h.updateRecipe)
		r.With(h.auth).Delete("/{id}", h.deleteRecipe)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

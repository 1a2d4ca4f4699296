package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Patch("/api/auth/reset-password/{secret}", h.resetPassword)

		r.Get("/api/hotels", h.listHotels)
		r.Get("/api/hotels/{hotelID}", h.getHotel)

		r.Get("/api/health", h.health)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Patch("/api/auth/update-password", h.updatePassword)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.restrictTo(models.RoleAdmin))

		r.Get("/api/auth/users", h.listUsers)
		r.Post("/api/auth/users", h.createUser)
		r.Get("/api/auth/users/{userID}", h.getUser)
		r.Patch("/api/auth/users/{userID}", h.updateUser)
		r.Delete("/api/auth/users/{userID}", h.deleteUser)

		r.Post("/api/hotels", h.createHotel)
		r.Patch("/api/hotels/{hotelID}", h.updateHotel)
		r.Delete("/api/hotels/{hotelID}", h.deleteHotel)
	})

	// uploaded hotel images, served from the local upload directory
	if h.images != nil {
		fs := http.StripPrefix("/uploads/hotels/", http.FileServer(http.Dir(h.images.Root())))
		router.Get("/uploads/hotels/*", fs.ServeHTTP)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.Response{Status: "error", Message: "route not found"}, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.Response{Status: "error", Message: "method not allowed"}, http.StatusMethodNotAllowed)
	})

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/auth", h.auth)
		r.Get("/items", h.listItems)
		r.Get("/version", h.getServerVersion)
	})

	// item routes behind the token gate
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)
		r.Get("/item/{name}", h.getItem)
		r.Post("/item/{name}", h.createItem)
		r.Put("/item/{name}", h.upsertItem)
		r.Delete("/item/{name}", h.deleteItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

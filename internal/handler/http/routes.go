package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.StripSlashes)
	router.Use(h.withCORS)
	router.Use(h.withAppVersion)
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/", h.sitemap(router))

	router.Get("/users", h.listUsers)
	router.Get("/users/{id:[0-9]+}", h.getUser)

	router.Get("/people", h.listPeople)
	router.Get("/people/{id:[0-9]+}", h.getPerson)

	router.Get("/planets", h.listPlanets)
	router.Get("/planets/{id:[0-9]+}", h.getPlanet)

	router.Get("/favorites/{user_id:[0-9]+}", h.listUserFavorites)

	router.Route("/favorite", func(r chi.Router) {
		r.Post("/people/{people_id:[0-9]+}", h.addPeopleFavorite)
		r.Delete("/people/{people_id:[0-9]+}", h.removePeopleFavorite)
		r.Post("/planet/{planet_id:[0-9]+}", h.addPlanetFavorite)
		r.Delete("/planet/{planet_id:[0-9]+}", h.removePlanetFavorite)
	})

	return router
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)

	router.Get("/healthcheck", app.healthcheck)
	router.Route("/films", func(r chi.Router) {
		r.Get("/", app.listFilms)
		r.Post("/", app.createFilm)
		r.Put("/", app.updateFilm)
		r.Get("/popular", app.popularFilms)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.getFilm)
			r.Delete("/", app.deleteFilm)
			r.Put("/like/{userId}", app.likeFilm)
			r.Delete("/like/{userId}", app.unlikeFilm)
		})
	})
	router.Route("/users", func(r chi.Router) {
		r.Get("/", app.listUsers)
		r.Post("/", app.createUser)
		r.Put("/", app.updateUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.getUser)
			r.Delete("/", app.deleteUser)
			r.Get("/friends", app.listFriends)
			r.Put("/friends/{friendId}", app.addFriend)
			r.Delete("/friends/{friendId}", app.removeFriend)
			r.Get("/friends/common/{otherId}", app.commonFriends)
		})
	})
	router.Route("/genres", func(r chi.Router) {
		r.Get("/", app.listGenres)
		r.Get("/{id}", app.getGenre)
	})
	router.Route("/mpa", func(r chi.Router) {
		r.Get("/", app.listMpa)
		r.Get("/{id}", app.getMpa)
	})
	return router
}

package main

import (
	"filmorate/proj/internal/domain/filters"
	"filmorate/proj/internal/domain/models"
	"net/http"
)

func (app *Application) listFilms(w http.ResponseWriter, r *http.Request) {
	films, err := app.services.Films.List(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, films)
}

func (app *Application) getFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	film, err := app.services.Films.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, film)
}

func (app *Application) popularFilms(w http.ResponseWriter, r *http.Request) {
	var params filters.Popular
	if err := app.query.Decode(&params, r.URL.Query()); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	films, err := app.services.Films.Popular(r.Context(), params.Limit())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, films)
}

func (app *Application) createFilm(w http.ResponseWriter, r *http.Request) {
	var film models.Film
	if !app.readJSONOrBadRequest(w, r, &film) {
		return
	}
	created, err := app.services.Films.Create(r.Context(), &film)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, created)
}

func (app *Application) updateFilm(w http.ResponseWriter, r *http.Request) {
	var film models.Film
	if !app.readJSONOrBadRequest(w, r, &film) {
		return
	}
	updated, err := app.services.Films.Update(r.Context(), &film)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, updated)
}

func (app *Application) deleteFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := app.services.Films.Delete(r.Context(), id); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Empty(w, r)
}

func (app *Application) likeFilm(w http.ResponseWriter, r *http.Request) {
	filmID, userID, ok := app.extractLikeParams(w, r)
	if !ok {
		return
	}
	if err := app.services.Films.AddLike(r.Context(), filmID, userID); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Empty(w, r)
}

func (app *Application) unlikeFilm(w http.ResponseWriter, r *http.Request) {
	filmID, userID, ok := app.extractLikeParams(w, r)
	if !ok {
		return
	}
	if err := app.services.Films.RemoveLike(r.Context(), filmID, userID); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Empty(w, r)
}

func (app *Application) extractLikeParams(w http.ResponseWriter, r *http.Request) (filmID, userID int64, ok bool) {
	if filmID, ok = app.extractIDParam(w, r, "id"); !ok {
		return
	}
	userID, ok = app.extractIDParam(w, r, "userId")
	return
}

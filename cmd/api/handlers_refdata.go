package main

import "net/http"

func (app *Application) listGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.services.RefData.Genres(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, genres)
}

func (app *Application) getGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	genre, err := app.services.RefData.Genre(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, genre)
}

func (app *Application) listMpa(w http.ResponseWriter, r *http.Request) {
	ratings, err := app.services.RefData.MpaRatings(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, ratings)
}

func (app *Application) getMpa(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	mpa, err := app.services.RefData.Mpa(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, mpa)
}

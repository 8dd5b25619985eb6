package main

import (
	"filmorate/proj/internal/domain/models"
	"net/http"
)

func (app *Application) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.services.Users.List(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, users)
}

func (app *Application) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	user, err := app.services.Users.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, user)
}

func (app *Application) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !app.readJSONOrBadRequest(w, r, &user) {
		return
	}
	created, err := app.services.Users.Create(r.Context(), &user)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, created)
}

func (app *Application) updateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !app.readJSONOrBadRequest(w, r, &user) {
		return
	}
	updated, err := app.services.Users.Update(r.Context(), &user)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, updated)
}

func (app *Application) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := app.services.Users.Delete(r.Context(), id); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Empty(w, r)
}

func (app *Application) addFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, ok := app.extractPairParams(w, r, "friendId")
	if !ok {
		return
	}
	if err := app.services.Users.AddFriend(r.Context(), userID, friendID); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Empty(w, r)
}

func (app *Application) removeFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, ok := app.extractPairParams(w, r, "friendId")
	if !ok {
		return
	}
	if err := app.services.Users.RemoveFriend(r.Context(), userID, friendID); err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Empty(w, r)
}

func (app *Application) listFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	friends, err := app.services.Users.Friends(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, friends)
}

func (app *Application) commonFriends(w http.ResponseWriter, r *http.Request) {
	userID, otherID, ok := app.extractPairParams(w, r, "otherId")
	if !ok {
		return
	}
	common, err := app.services.Users.CommonFriends(r.Context(), userID, otherID)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, common)
}

func (app *Application) extractPairParams(w http.ResponseWriter, r *http.Request, other string) (userID, otherID int64, ok bool) {
	if userID, ok = app.extractIDParam(w, r, "id"); !ok {
		return
	}
	otherID, ok = app.extractIDParam(w, r, other)
	return
}

package main

import (
	"encoding/json"
	"errors"
	"filmorate/proj/internal/lib/validator"
	"filmorate/proj/internal/services/films"
	"filmorate/proj/internal/services/refdata"
	"filmorate/proj/internal/services/users"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// extractIDParam parses the named path parameter as a positive id and
// answers 400 when it is not one.
func (app *Application) extractIDParam(w http.ResponseWriter, r *http.Request, name string) (id int64, extracted bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		app.Http.ValidationFailed(w, r, map[string]string{name: "Invalid id"})
		return 0, false
	}
	if id < 1 {
		app.Http.ValidationFailed(w, r, map[string]string{name: "Value should be greater than 0"})
		return 0, false
	}
	return id, true
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	src := http.MaxBytesReader(w, r.Body, int64(maxBytes))
	defer io.Copy(io.Discard, src)
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		return handleJsonErr(err)
	}
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// readJSONOrBadRequest reports whether dst was filled. On failure the 400
// response is already written.
func (app *Application) readJSONOrBadRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := app.readJSON(w, r, dst); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return false
	}
	return true
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")

	case errors.As(err, &unmarshalTypeError):
		if unmarshalTypeError.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		}
		return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")

	case errors.As(err, &maxBytesError):
		return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}

// handleServiceError translates service errors into responses.
func (app *Application) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validator.ValidationError
	switch {
	case errors.As(err, &vErr):
		app.Http.ValidationFailed(w, r, vErr.Errors)
	case errors.Is(err, films.ErrFilmNotFound),
		errors.Is(err, films.ErrLikeNotFound),
		errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, users.ErrFriendshipNotFound),
		errors.Is(err, refdata.ErrGenreNotFound),
		errors.Is(err, refdata.ErrMpaNotFound):
		app.Http.NotFound(w, r, err.Error())
	case errors.Is(err, users.ErrUserAlreadyExists):
		app.Http.Conflict(w, r, err.Error())
	default:
		app.Http.ServerError(w, r, err, "")
	}
}

package main

import (
	"filmorate/proj/internal/domain/models"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filmBody(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "adipisicing",
		"releaseDate": "1967-03-25",
		"duration":    100,
		"mpa":         map[string]any{"id": 1},
		"genres":      []map[string]any{{"id": 2}, {"id": 1}, {"id": 2}},
	}
}

func userBody(login string) map[string]any {
	return map[string]any{
		"email":    login + "@mail.ru",
		"login":    login,
		"name":     "",
		"birthday": "1946-08-20",
	}
}

func (s *testServer) createFilm(name string) models.Film {
	s.t.Helper()
	return decode[models.Film](s.t, s.do(http.MethodPost, "/films", filmBody(name)), http.StatusCreated)
}

func (s *testServer) createUser(login string) models.User {
	s.t.Helper()
	return decode[models.User](s.t, s.do(http.MethodPost, "/users", userBody(login)), http.StatusCreated)
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)
	body := decode[map[string]any](t, s.do(http.MethodGet, "/healthcheck", nil), http.StatusOK)
	assert.Equal(t, "available", body["status"])
	assert.Equal(t, version, body["version"])
}

func TestFilmsCRUD(t *testing.T) {
	s := newTestServer(t)

	created := s.createFilm("nisi eiusmod")
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "G", created.Mpa.Name)
	assert.Equal(t, []int64{1, 2}, created.Genres.IDs())

	got := decode[models.Film](t, s.do(http.MethodGet, "/films/1", nil), http.StatusOK)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, "1967-03-25", got.ReleaseDate.String())

	upd := filmBody("Film Updated")
	upd["id"] = created.ID
	upd["genres"] = []map[string]any{}
	updated := decode[models.Film](t, s.do(http.MethodPut, "/films", upd), http.StatusOK)
	assert.Equal(t, "Film Updated", updated.Name)
	assert.Empty(t, updated.Genres)

	list := decode[[]models.Film](t, s.do(http.MethodGet, "/films", nil), http.StatusOK)
	require.Len(t, list, 1)
	assert.Equal(t, "Film Updated", list[0].Name)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/films/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/films/1", nil).Code)
}

func TestFilmsEmptyList(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/films", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateFilmValidation(t *testing.T) {
	s := newTestServer(t)
	longDescription := make([]byte, 201)
	for i := range longDescription {
		longDescription[i] = 'a'
	}
	cases := []struct {
		name  string
		patch map[string]any
		field string
	}{
		{"blank name", map[string]any{"name": "  "}, "name"},
		{"long description", map[string]any{"description": string(longDescription)}, "description"},
		{"too early", map[string]any{"releaseDate": "1890-03-25"}, "releaseDate"},
		{"zero duration", map[string]any{"duration": 0}, "duration"},
		{"negative duration", map[string]any{"duration": -1}, "duration"},
		{"missing mpa", map[string]any{"mpa": nil}, "mpa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := filmBody("film")
			for k, v := range tc.patch {
				body[k] = v
			}
			resp := decode[Response](t, s.do(http.MethodPost, "/films", body), http.StatusBadRequest)
			assert.False(t, resp.Success)
			errs, ok := resp.Data["errors"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, errs, tc.field)
		})
	}

	list := decode[[]models.Film](t, s.do(http.MethodGet, "/films", nil), http.StatusOK)
	assert.Empty(t, list)
}

func TestCreateFilmBadBody(t *testing.T) {
	s := newTestServer(t)
	cases := map[string]string{
		"malformed":     `{"name": `,
		"unknown field": `{"name": "x", "rating": 5}`,
		"two values":    `{} {}`,
		"empty":         ``,
		"bad date":      `{"name": "x", "releaseDate": "25.03.1967"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/films", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFilmUnknownReferences(t *testing.T) {
	s := newTestServer(t)
	body := filmBody("film")
	body["mpa"] = map[string]any{"id": 999}
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/films", body).Code)

	body = filmBody("film")
	body["genres"] = []map[string]any{{"id": 999}}
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/films", body).Code)
}

func TestUpdateUnknownFilm(t *testing.T) {
	s := newTestServer(t)
	body := filmBody("ghost")
	body["id"] = 9999
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/films", body).Code)
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/films/abc", "/films/0", "/films/-1", "/users/abc", "/genres/0", "/mpa/x"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, path, nil).Code)
		})
	}
}

func TestLikesAndPopular(t *testing.T) {
	s := newTestServer(t)
	x := s.createFilm("x")
	y := s.createFilm("y")
	z := s.createFilm("z")
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	like := func(film, user int64) int {
		return s.do(http.MethodPut, fmt.Sprintf("/films/%d/like/%d", film, user), nil).Code
	}
	require.Equal(t, http.StatusOK, like(z.ID, alice.ID))
	require.Equal(t, http.StatusOK, like(z.ID, bob.ID))
	require.Equal(t, http.StatusOK, like(y.ID, alice.ID))
	require.Equal(t, http.StatusOK, like(y.ID, alice.ID))
	assert.Equal(t, http.StatusNotFound, like(999, alice.ID))
	assert.Equal(t, http.StatusNotFound, like(x.ID, 999))

	popular := decode[[]models.Film](t, s.do(http.MethodGet, "/films/popular", nil), http.StatusOK)
	require.Len(t, popular, 3)
	assert.Equal(t, []int64{z.ID, y.ID, x.ID}, []int64{popular[0].ID, popular[1].ID, popular[2].ID})
	assert.ElementsMatch(t, []int64{alice.ID, bob.ID}, popular[0].Likes)

	popular = decode[[]models.Film](t, s.do(http.MethodGet, "/films/popular?count=1", nil), http.StatusOK)
	require.Len(t, popular, 1)
	assert.Equal(t, z.ID, popular[0].ID)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/films/popular?count=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/films/popular?count=-5", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/films/popular?count=many", nil).Code)

	unlike := fmt.Sprintf("/films/%d/like/%d", z.ID, bob.ID)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, unlike, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, unlike, nil).Code)
}

func TestUsersCRUD(t *testing.T) {
	s := newTestServer(t)
	created := s.createUser("dolore")
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "dolore", created.Name)
	assert.Equal(t, "1946-08-20", created.Birthday.String())

	upd := userBody("doloreUpdate")
	upd["id"] = created.ID
	upd["name"] = "est adipisicing"
	updated := decode[models.User](t, s.do(http.MethodPut, "/users", upd), http.StatusOK)
	assert.Equal(t, "est adipisicing", updated.Name)
	assert.Equal(t, "doloreUpdate", updated.Login)

	got := decode[models.User](t, s.do(http.MethodGet, "/users/1", nil), http.StatusOK)
	assert.Equal(t, updated, got)

	list := decode[[]models.User](t, s.do(http.MethodGet, "/users", nil), http.StatusOK)
	assert.Len(t, list, 1)

	dup := userBody("other")
	dup["email"] = "doloreUpdate@mail.ru"
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/users", dup).Code)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/users/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/users/1", nil).Code)
}

func TestCreateUserValidation(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		name  string
		patch map[string]any
		field string
	}{
		{"bad email", map[string]any{"email": "mail.ru"}, "email"},
		{"login with spaces", map[string]any{"login": "dolore ullamco"}, "login"},
		{"future birthday", map[string]any{"birthday": "2446-08-20"}, "birthday"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := userBody("user")
			for k, v := range tc.patch {
				body[k] = v
			}
			resp := decode[Response](t, s.do(http.MethodPost, "/users", body), http.StatusBadRequest)
			errs, ok := resp.Data["errors"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestUpdateUserWithoutID(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/users", userBody("noid")).Code)
	body := userBody("ghost")
	body["id"] = 9999
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/users", body).Code)
}

func TestFriends(t *testing.T) {
	s := newTestServer(t)
	a := s.createUser("a")
	b := s.createUser("b")
	c := s.createUser("c")

	friendPath := func(user, friend int64) string {
		return fmt.Sprintf("/users/%d/friends/%d", user, friend)
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, friendPath(a.ID, c.ID), nil).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, friendPath(b.ID, c.ID), nil).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, friendPath(a.ID, b.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, friendPath(a.ID, 999), nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, friendPath(a.ID, a.ID), nil).Code)

	friends := decode[[]models.User](t, s.do(http.MethodGet, fmt.Sprintf("/users/%d/friends", a.ID), nil), http.StatusOK)
	assert.Equal(t, []int64{b.ID, c.ID}, []int64{friends[0].ID, friends[1].ID})

	friends = decode[[]models.User](t, s.do(http.MethodGet, fmt.Sprintf("/users/%d/friends", c.ID), nil), http.StatusOK)
	assert.Empty(t, friends)

	common := decode[[]models.User](t, s.do(http.MethodGet, fmt.Sprintf("/users/%d/friends/common/%d", a.ID, b.ID), nil), http.StatusOK)
	require.Len(t, common, 1)
	assert.Equal(t, c.ID, common[0].ID)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, friendPath(a.ID, b.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, friendPath(a.ID, b.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/users/999/friends", nil).Code)
}

func TestReferenceData(t *testing.T) {
	s := newTestServer(t)

	genres := decode[[]models.Genre](t, s.do(http.MethodGet, "/genres", nil), http.StatusOK)
	assert.Equal(t, models.SeedGenres, genres)
	genre := decode[models.Genre](t, s.do(http.MethodGet, "/genres/2", nil), http.StatusOK)
	assert.Equal(t, "Drama", genre.Name)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/genres/9999", nil).Code)

	ratings := decode[[]models.Mpa](t, s.do(http.MethodGet, "/mpa", nil), http.StatusOK)
	assert.Equal(t, models.SeedMpaRatings, ratings)
	mpa := decode[models.Mpa](t, s.do(http.MethodGet, "/mpa/4", nil), http.StatusOK)
	assert.Equal(t, "R", mpa.Name)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/mpa/9999", nil).Code)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	resp := decode[Response](t, s.do(http.MethodGet, "/reviews", nil), http.StatusNotFound)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusMethodNotAllowed, s.do(http.MethodPatch, "/films", nil).Code)
}

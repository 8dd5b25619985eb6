package models

import (
	"bytes"
	"encoding/json"
	"filmorate/proj/internal/domain/fields"
	"slices"
)

type Film struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name" validate:"notblank"`
	Description string      `json:"description" validate:"max=200"`
	ReleaseDate fields.Date `json:"releaseDate" validate:"required,releasedate"`
	Duration    int32       `json:"duration" validate:"gt=0"`
	Mpa         *Mpa        `json:"mpa" validate:"required"`
	Genres      GenreSet    `json:"genres" validate:"dive"`
	Likes       []int64     `json:"likes"` // IDs of users who liked the film, read only
}

type User struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email" validate:"notblank,contains=@"`
	Login    string      `json:"login" validate:"notblank,nowhitespace"`
	Name     string      `json:"name"`
	Birthday fields.Date `json:"birthday" validate:"required,notfuture"`
	Friends  []int64     `json:"friends"` // IDs of users this one follows, read only
}

type Genre struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name,omitempty"`
}

type Mpa struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name,omitempty"`
}

// GenreSet is keyed by genre ID, so a film can never carry the same genre
// twice. On the wire it is an array of genres sorted by ID.
type GenreSet map[int64]Genre

func NewGenreSet(genres ...Genre) GenreSet {
	set := make(GenreSet, len(genres))
	for _, g := range genres {
		set.Add(g)
	}
	return set
}

func (s GenreSet) Add(g Genre) {
	s[g.ID] = g
}

func (s GenreSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Sorted returns the genres ordered by ID.
func (s GenreSet) Sorted() []Genre {
	out := make([]Genre, 0, len(s))
	for _, id := range s.IDs() {
		out = append(out, s[id])
	}
	return out
}

func (s GenreSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *GenreSet) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = GenreSet{}
		return nil
	}
	var genres []Genre
	if err := json.Unmarshal(data, &genres); err != nil {
		return err
	}
	*s = NewGenreSet(genres...)
	return nil
}

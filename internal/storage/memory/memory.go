// Package memory keeps every table in process memory. It satisfies the same
// storage contracts as the postgres models and backs tests and the
// "memory" storage mode.
package memory

import (
	"filmorate/proj/internal/domain/models"
	"slices"
	"sync"
)

type edge struct {
	from, to int64
}

type DB struct {
	mu sync.RWMutex

	nextFilmID int64
	nextUserID int64

	films   map[int64]models.Film
	users   map[int64]models.User
	genres  map[int64]models.Genre
	mpa     map[int64]models.Mpa
	likes   map[edge]struct{} // film -> user
	friends map[edge]struct{} // user -> friend
}

type Models struct {
	Film   *FilmStore
	User   *UserStore
	Like   *LikeStore
	Friend *FriendStore
	Genre  *GenreStore
	Mpa    *MpaStore
}

// New creates an empty store, seeded with reference data when seed is set.
func New(seed bool) *Models {
	db := &DB{
		nextFilmID: 1,
		nextUserID: 1,
		films:      make(map[int64]models.Film),
		users:      make(map[int64]models.User),
		genres:     make(map[int64]models.Genre),
		mpa:        make(map[int64]models.Mpa),
		likes:      make(map[edge]struct{}),
		friends:    make(map[edge]struct{}),
	}
	if seed {
		for _, g := range models.SeedGenres {
			db.genres[g.ID] = g
		}
		for _, m := range models.SeedMpaRatings {
			db.mpa[m.ID] = m
		}
	}
	return &Models{
		Film:   &FilmStore{db},
		User:   &UserStore{db},
		Like:   &LikeStore{db},
		Friend: &FriendStore{db},
		Genre:  &GenreStore{db},
		Mpa:    &MpaStore{db},
	}
}

// targets returns the sorted "to" ids of all edges leaving from.
func targets(edges map[edge]struct{}, from int64) []int64 {
	out := []int64{}
	for e := range edges {
		if e.from == from {
			out = append(out, e.to)
		}
	}
	slices.Sort(out)
	return out
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

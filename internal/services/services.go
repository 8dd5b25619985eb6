package services

import (
	"filmorate/proj/internal/services/films"
	"filmorate/proj/internal/services/refdata"
	"filmorate/proj/internal/services/users"
	"filmorate/proj/internal/storage/memory"
	pgmodels "filmorate/proj/internal/storage/postgres/models"
	"log/slog"

	govalidator "github.com/go-playground/validator/v10"
)

// Storage bundles every store the services depend on. Both the postgres
// models and the in-memory store can fill it.
type Storage struct {
	Films   films.FilmsStorage
	Likes   films.LikesStorage
	Users   users.UsersStorage
	Friends users.FriendsStorage
	Genres  refdata.GenresStorage
	Mpa     refdata.MpaStorage
}

func PostgresStorage(m *pgmodels.Models) Storage {
	return Storage{
		Films:   m.Film,
		Likes:   m.Like,
		Users:   m.User,
		Friends: m.Friend,
		Genres:  m.Genre,
		Mpa:     m.Mpa,
	}
}

func MemoryStorage(m *memory.Models) Storage {
	return Storage{
		Films:   m.Film,
		Likes:   m.Like,
		Users:   m.User,
		Friends: m.Friend,
		Genres:  m.Genre,
		Mpa:     m.Mpa,
	}
}

type Services struct {
	Films   *films.FilmService
	Users   *users.UserService
	RefData *refdata.Service
}

func New(log *slog.Logger, validator *govalidator.Validate, storage Storage) *Services {
	refs := refdata.New(log, storage.Genres, storage.Mpa)
	userService := users.New(log, validator, storage.Users, storage.Friends)
	return &Services{
		Films:   films.New(log, validator, storage.Films, storage.Likes, userService, refs),
		Users:   userService,
		RefData: refs,
	}
}

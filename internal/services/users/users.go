package users

import (
	"context"
	"errors"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/lib/validator"
	"filmorate/proj/internal/storage"
	"log/slog"

	govalidator "github.com/go-playground/validator/v10"
)

type UsersStorage interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// FriendsStorage persists directed friendship edges.
type FriendsStorage interface {
	Add(ctx context.Context, userID, friendID int64) error
	Remove(ctx context.Context, userID, friendID int64) error
	List(ctx context.Context, userID int64) ([]models.User, error)
	Common(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

type UserService struct {
	log       *slog.Logger
	validator *govalidator.Validate
	storage   UsersStorage
	friends   FriendsStorage
}

func New(log *slog.Logger, validator *govalidator.Validate, storage UsersStorage, friends FriendsStorage) *UserService {
	return &UserService{
		log:       log,
		validator: validator,
		storage:   storage,
		friends:   friends,
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "users.UserService.Get"
	log := s.log.With("op", op, "id", id)
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	const op = "users.UserService.List"
	users, err := s.storage.List(ctx)
	if err != nil {
		s.log.Error(err.Error(), "op", op)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "users.UserService.Create"
	log := s.log.With("op", op, "login", user.Login, "email", user.Email)
	if err := validator.ValidateUser(s.validator, user); err != nil {
		log.Info("invalid user", "reason", err.Error())
		return nil, err
	}
	created, err := s.storage.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("user already exists")
			return nil, ErrUserAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("user created", "id", created.ID)
	return created, nil
}

func (s *UserService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "users.UserService.Update"
	log := s.log.With("op", op, "id", user.ID, "login", user.Login)
	if user.ID == 0 {
		return nil, ErrMissingID
	}
	if err := validator.ValidateUser(s.validator, user); err != nil {
		log.Info("invalid user", "reason", err.Error())
		return nil, err
	}
	if _, err := s.Get(ctx, user.ID); err != nil {
		return nil, err
	}
	updated, err := s.storage.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("user already exists")
			return nil, ErrUserAlreadyExists
		case errors.Is(err, storage.ErrNotFound):
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error("Error updating user: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	const op = "users.UserService.Delete"
	log := s.log.With("op", op, "id", id)
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

// AddFriend makes friendID appear in the friend list of userID. The
// relation is one-directional, friendID's own list is left as is.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int64) error {
	const op = "users.UserService.AddFriend"
	log := s.log.With("op", op, "user_id", userID, "friend_id", friendID)
	if userID == friendID {
		return ErrSelfFriendship
	}
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}
	if err := s.friends.Add(ctx, userID, friendID); err != nil {
		if errors.Is(err, storage.ErrReference) {
			log.Info("user vanished while adding a friend")
			return ErrUserNotFound
		}
		log.Error(err.Error())
		return err
	}
	log.Info("friend added")
	return nil
}

func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	const op = "users.UserService.RemoveFriend"
	log := s.log.With("op", op, "user_id", userID, "friend_id", friendID)
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}
	if err := s.friends.Remove(ctx, userID, friendID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("friendship not found")
			return ErrFriendshipNotFound
		}
		log.Error(err.Error())
		return err
	}
	log.Info("friend removed")
	return nil
}

func (s *UserService) Friends(ctx context.Context, userID int64) ([]models.User, error) {
	const op = "users.UserService.Friends"
	if err := s.requireUsers(ctx, userID); err != nil {
		return nil, err
	}
	friends, err := s.friends.List(ctx, userID)
	if err != nil {
		s.log.Error(err.Error(), "op", op, "user_id", userID)
		return nil, err
	}
	return friends, nil
}

func (s *UserService) CommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	const op = "users.UserService.CommonFriends"
	if err := s.requireUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}
	common, err := s.friends.Common(ctx, userID, otherID)
	if err != nil {
		s.log.Error(err.Error(), "op", op, "user_id", userID, "other_id", otherID)
		return nil, err
	}
	return common, nil
}

func (s *UserService) requireUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

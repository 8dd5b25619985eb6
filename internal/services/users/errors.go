package users

import (
	"errors"
	"filmorate/proj/internal/lib/validator"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with that email or login already exists")
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrSelfFriendship     = validator.NewValidationError("friendId", "user can not add themselves as a friend")
	ErrMissingID          = validator.NewValidationError("id", "This field is required")
)

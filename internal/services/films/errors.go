package films

import (
	"errors"
	"filmorate/proj/internal/lib/validator"
)

var (
	ErrFilmNotFound = errors.New("film not found")
	ErrLikeNotFound = errors.New("like not found")
	ErrMissingID    = validator.NewValidationError("id", "This field is required")
	ErrInvalidCount = validator.NewValidationError("count", "Value should be greater than 0")
)

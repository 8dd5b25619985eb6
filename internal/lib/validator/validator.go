package validator

import (
	"filmorate/proj/internal/domain/fields"
	"filmorate/proj/internal/domain/models"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
	"unicode"

	govalidator "github.com/go-playground/validator/v10"
)

// CinemaBirthday is the date of the first public film screening. No film
// may be released before it.
var CinemaBirthday = fields.NewDate(1895, time.December, 28)

type ValidationError struct {
	Errors map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Errors: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Errors[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// New returns a validator that reports json field names and knows the
// custom tags used by the domain models.
func New() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(fields.Date); ok {
			return d.Time
		}
		return nil
	}, fields.Date{})
	mustRegister(v, "notblank", validateNotBlank)
	mustRegister(v, "nowhitespace", validateNoWhitespace)
	mustRegister(v, "releasedate", validateReleaseDate)
	mustRegister(v, "notfuture", validateNotFuture)
	return v
}

func mustRegister(v *govalidator.Validate, tag string, fn govalidator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateFilm checks field constraints of a film. Reference ids are only
// checked for shape here, their existence is up to the caller.
func ValidateFilm(v *govalidator.Validate, film *models.Film) error {
	return validateStruct(v, film)
}

// ValidateUser checks field constraints of a user and defaults a blank name
// to the login.
func ValidateUser(v *govalidator.Validate, user *models.User) error {
	if err := validateStruct(v, user); err != nil {
		return err
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return nil
}

func validateStruct(v *govalidator.Validate, obj any) error {
	if errs := ValidateStruct(v, obj); errs != nil {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func ValidateStruct(validator *govalidator.Validate, obj any) (validationErrs map[string]string) {
	if err := validator.Struct(obj); err != nil {
		validationErrs = ProcessValidationErrors(err.(govalidator.ValidationErrors))
	}
	return
}

func ProcessValidationErrors(errs govalidator.ValidationErrors) map[string]string {
	processedErrors := make(map[string]string)
	for _, e := range errs {
		processedErrors[fieldPath(e)] = GetErrorMsgForField(e)
	}
	return processedErrors
}

// fieldPath drops the root struct name, "Film.mpa.id" becomes "mpa.id".
func fieldPath(e govalidator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func GetErrorMsgForField(err govalidator.FieldError) (errorMsg string) {
	switch err.Tag() {
	case "required":
		errorMsg = "This field is required"
	case "notblank":
		errorMsg = "This field must not be blank"
	case "nowhitespace":
		errorMsg = "Value must not contain whitespace"
	case "releasedate":
		errorMsg = fmt.Sprintf("Release date must not be earlier than %s", CinemaBirthday)
	case "notfuture":
		errorMsg = "Date must not be in the future"
	case "contains":
		errorMsg = fmt.Sprintf("Value must contain %q", err.Param())
	case "max":
		errorMsg = fmt.Sprintf("The maximum length is %s", err.Param())
	case "min":
		errorMsg = fmt.Sprintf("The minimum value is %s", err.Param())
	case "gte":
		errorMsg = fmt.Sprintf("Value should be greater than or equal to %s", err.Param())
	case "gt":
		errorMsg = fmt.Sprintf("Value should be greater than %s", err.Param())
	case "email":
		errorMsg = "Value must be a valid email address"
	default:
		errorMsg = "This field is invalid"
	}
	return
}

// CUSTOM VALIDATORS

func validateNotBlank(fl govalidator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateNoWhitespace(fl govalidator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

func validateReleaseDate(fl govalidator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !fields.DateOf(t).Before(CinemaBirthday.Time)
}

func validateNotFuture(fl govalidator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !fields.DateOf(t).After(fields.Today().Time)
}

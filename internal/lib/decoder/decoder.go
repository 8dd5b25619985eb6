// Package decoder fills structs from url query parameters.
package decoder

import (
	"errors"
	"filmorate/proj/internal/lib/validator"
	"net/url"

	"github.com/gorilla/schema"
)

type QueryDecoder struct {
	dec *schema.Decoder
}

func New() *QueryDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dec.ZeroEmpty(false)
	return &QueryDecoder{dec: dec}
}

// Decode fills dst from src. Values that do not convert to the field type
// are reported as a *validator.ValidationError keyed by parameter name.
func (d *QueryDecoder) Decode(dst any, src url.Values) error {
	err := d.dec.Decode(dst, src)
	if err == nil {
		return nil
	}
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err
	}
	vErr := &validator.ValidationError{Errors: make(map[string]string, len(multi))}
	for key, fieldErr := range multi {
		var convErr schema.ConversionError
		if errors.As(fieldErr, &convErr) {
			vErr.Errors[key] = "Invalid value"
			continue
		}
		vErr.Errors[key] = fieldErr.Error()
	}
	return vErr
}

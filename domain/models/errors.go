package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Domain error types
var (
	// ErrInvalidStatus is returned when a status literal is not one of the known values
	ErrInvalidStatus = errors.New("status must be one of cleared, uncleared, recurring, recurring_suggested")

	// ErrMissingPayload is returned when an input has nothing to serialise
	ErrMissingPayload = errors.New("payload must not be nil")
)

// FieldError names one field that broke one constraint.
type FieldError struct {
	Path       string
	Constraint string
}

func (f FieldError) String() string {
	if f.Path == "" {
		return f.Constraint
	}
	return f.Path + ": " + f.Constraint
}

// ValidationError is returned when a payload does not match its schema.
// Paths are dotted, list positions are zero-based indexes (tags.1.name).
type ValidationError struct {
	Model  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invalid %s: %s", e.Model, strings.Join(parts, "; "))
}

// HasField reports whether path is among the offending fields.
func (e *ValidationError) HasField(path string) bool {
	for _, f := range e.Fields {
		if f.Path == path {
			return true
		}
	}
	return false
}

// newValidationError flattens ozzo-validation errors into a ValidationError.
// It returns a nil error (not a typed nil) when err is nil.
func newValidationError(model string, err error) error {
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("validating %s: %w", model, err)
	}

	ve := &ValidationError{Model: model}
	collectFieldErrors("", err, &ve.Fields)
	sort.SliceStable(ve.Fields, func(i, j int) bool { return pathLess(ve.Fields[i].Path, ve.Fields[j].Path) })
	return ve
}

func collectFieldErrors(prefix string, err error, out *[]FieldError) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		for key, fieldErr := range errs {
			collectFieldErrors(joinPath(prefix, key), fieldErr, out)
		}
		return
	}

	var nested *ValidationError
	if errors.As(err, &nested) {
		for _, f := range nested.Fields {
			*out = append(*out, FieldError{Path: joinPath(prefix, f.Path), Constraint: f.Constraint})
		}
		return
	}

	*out = append(*out, FieldError{Path: prefix, Constraint: err.Error()})
}

// decodeError turns a JSON decoding failure into a ValidationError. The
// decoder's own field name wins; field is used when the decoder has none.
func decodeError(model string, err error, field string) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = field
		}
		return &ValidationError{
			Model: model,
			Fields: []FieldError{{
				Path:       path,
				Constraint: fmt.Sprintf("must be %s, got %s", typeErr.Type, typeErr.Value),
			}},
		}
	}
	return &ValidationError{
		Model:  model,
		Fields: []FieldError{{Path: field, Constraint: err.Error()}},
	}
}

func joinPath(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}

func indexPath(i int) string {
	return strconv.Itoa(i)
}

// pathLess orders dotted paths segment by segment, comparing list indexes
// numerically so tags.2 sorts before tags.10.
func pathLess(a, b string) bool {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			return ai < bi
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}

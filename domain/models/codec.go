package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// EncodeOptions controls how a typed value is turned back into a JSON object
type EncodeOptions struct {
	// Exclude lists top-level keys to drop
	Exclude []string

	// ExcludeNone drops keys whose value is null, at any depth
	ExcludeNone bool
}

// Encode re-serialises v into a JSON-compatible map. Numbers are kept as
// json.Number so nothing is lost to float conversion.
func Encode(v any, opts EncodeOptions) (map[string]any, error) {
	if v == nil {
		return nil, ErrMissingPayload
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %T into an object: %w", v, err)
	}

	for _, key := range opts.Exclude {
		delete(out, key)
	}
	if opts.ExcludeNone {
		dropNulls(out)
	}
	return out, nil
}

func dropNulls(v any) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			if child == nil {
				delete(node, k)
				continue
			}
			dropNulls(child)
		}
	case []any:
		for _, child := range node {
			dropNulls(child)
		}
	}
}

type validatable interface {
	Validate() error
}

// decodeOne unmarshals raw into a T, applying defaults first so that keys
// absent from raw keep them, then validates the result.
func decodeOne[T validatable](model string, raw []byte, defaults func(*T)) (T, error) {
	var v T
	if defaults != nil {
		defaults(&v)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, decodeError(model, err, failingKey[T](raw))
	}
	if err := v.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// decodeList decodes every element independently; any invalid element fails
// the whole list, with all offending paths reported.
func decodeList[T any](model string, raw []byte, decode func([]byte) (T, error)) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, decodeError(model, err, "")
	}

	out := make([]T, 0, len(items))
	failed := &ValidationError{Model: model}
	for i, item := range items {
		v, err := decode(item)
		if err != nil {
			var itemErr *ValidationError
			if !errors.As(err, &itemErr) {
				return nil, err
			}
			for _, f := range itemErr.Fields {
				failed.Fields = append(failed.Fields, FieldError{
					Path:       joinPath(indexPath(i), f.Path),
					Constraint: f.Constraint,
				})
			}
			continue
		}
		out = append(out, v)
	}

	if len(failed.Fields) > 0 {
		return nil, failed
	}
	return out, nil
}

// failingKey finds the top-level key of raw that cannot be decoded into a T on
// its own. Custom unmarshalers (decimals, timestamps) report errors without a
// field name, so each key is retried in isolation. It returns "" when no
// single key fails.
func failingKey[T any](raw []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{key: fields[key]})
		if err != nil {
			continue
		}
		var v T
		if err := json.Unmarshal(single, &v); err != nil {
			return key
		}
	}
	return ""
}

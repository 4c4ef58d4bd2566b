package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Tag is a free-form label attachable to many transactions
type Tag struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Validate checks if the tag is valid
func (t Tag) Validate() error {
	return newValidationError("tag", validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
	))
}

// DecodeTag parses and validates a single tag
func DecodeTag(raw []byte) (Tag, error) {
	return decodeOne[Tag]("tag", raw, nil)
}

// DecodeTags parses and validates a list of tags
func DecodeTags(raw []byte) ([]Tag, error) {
	return decodeList("tag", raw, DecodeTag)
}

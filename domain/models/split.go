package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SplitData divides an existing transaction into category-tagged parts
type SplitData struct {
	Date       string  `json:"date"`
	CategoryID int64   `json:"category_id"`
	Amount     int64   `json:"amount"`
	Notes      *string `json:"notes,omitempty"`
}

// Validate checks if the split is valid
func (s SplitData) Validate() error {
	return newValidationError("split", validation.ValidateStruct(&s,
		validation.Field(&s.Date, validation.Required),
		validation.Field(&s.CategoryID, validation.Required),
		validation.Field(&s.Notes, validation.RuneLength(0, NotesMaxLength)),
	))
}

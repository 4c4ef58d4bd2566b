package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// CategoryNameMaxLength is the longest category name the API accepts
	CategoryNameMaxLength = 40

	// CategoryDescriptionMaxLength is the longest category description the API accepts
	CategoryDescriptionMaxLength = 140
)

// Category classifies transactions. A category may belong to one group
// category through GroupID; groups do not nest further.
type Category struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	IsIncome          bool      `json:"is_income"`
	ExcludeFromBudget bool      `json:"exclude_from_budget"`
	ExcludeFromTotals bool      `json:"exclude_from_totals"`
	UpdatedAt         time.Time `json:"updated_at"`
	CreatedAt         time.Time `json:"created_at"`
	IsGroup           bool      `json:"is_group"`
	GroupID           *int64    `json:"group_id"`
}

// Validate checks if the category is valid
func (c Category) Validate() error {
	return newValidationError("category", validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.RuneLength(1, CategoryNameMaxLength)),
		validation.Field(&c.Description, validation.RuneLength(0, CategoryDescriptionMaxLength)),
		validation.Field(&c.CreatedAt, validation.Required),
		validation.Field(&c.UpdatedAt, validation.Required),
	))
}

// InGroup reports whether the category sits under a group category
func (c Category) InGroup() bool {
	return c.GroupID != nil
}

// DecodeCategory parses and validates a single category
func DecodeCategory(raw []byte) (Category, error) {
	return decodeOne[Category]("category", raw, nil)
}

// DecodeCategories parses and validates a list of categories
func DecodeCategories(raw []byte) ([]Category, error) {
	return decodeList("category", raw, DecodeCategory)
}

// CreateCategoryRequest is the body of a category creation.
// The boolean flags default to false and are always sent.
type CreateCategoryRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	IsIncome          bool    `json:"is_income"`
	ExcludeFromBudget bool    `json:"exclude_from_budget"`
	ExcludeFromTotals bool    `json:"exclude_from_totals"`
}

// Validate checks the request before it is sent
func (r CreateCategoryRequest) Validate() error {
	return newValidationError("category", validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, CategoryNameMaxLength)),
		validation.Field(&r.Description, validation.RuneLength(0, CategoryDescriptionMaxLength)),
	))
}

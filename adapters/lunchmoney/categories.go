package lunchmoney

import (
	"context"
	"net/http"

	"github.com/ZanzyTHEbar/lunchmoney-go/domain/models"
)

// Categories lists every category
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	raw, err := c.makeRequest(ctx, http.MethodGet, "categories", nil, nil, "categories")
	if err != nil {
		return nil, err
	}

	categories, err := models.DecodeCategories(raw)
	if err != nil {
		return nil, validationError("invalid categories response", err)
	}

	c.logger.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

// CreateCategory creates a category and returns the id the server assigned
func (c *Client) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, validationError("invalid category", err)
	}

	raw, err := c.makeRequest(ctx, http.MethodPost, "categories", nil, req, "category_id")
	if err != nil {
		return 0, err
	}

	var id int64
	if err := decodeInto(raw, &id, "category_id"); err != nil {
		return 0, err
	}
	return id, nil
}

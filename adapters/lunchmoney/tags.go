package lunchmoney

import (
	"context"
	"net/http"

	"github.com/ZanzyTHEbar/lunchmoney-go/domain/models"
)

// Tags lists every tag. The endpoint returns the list itself, not an envelope.
func (c *Client) Tags(ctx context.Context) ([]models.Tag, error) {
	raw, err := c.makeRequest(ctx, http.MethodGet, "tags", nil, nil, "")
	if err != nil {
		return nil, err
	}

	tags, err := models.DecodeTags(raw)
	if err != nil {
		return nil, validationError("invalid tags response", err)
	}

	c.logger.Debugf("Retrieved %d tags", len(tags))
	return tags, nil
}

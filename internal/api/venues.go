package api

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
)

type venuesResponse struct {
	Success bool          `json:"success"`
	Venues  []model.Venue `json:"venues"`
}

// VenuesByCategory fetches the venue list for one category tag.
// There is no caching here or above: every screen entry re-fetches.
func (c *Client) VenuesByCategory(ctx context.Context, category model.Category) ([]model.Venue, error) {
	var out venuesResponse
	if err := c.get(ctx, "/api/venues/"+category.Slug(), &out); err != nil {
		return nil, fmt.Errorf("list %s venues: %w", category.Slug(), err)
	}
	if !out.Success {
		return nil, fmt.Errorf("list %s venues: backend reported failure", category.Slug())
	}
	return out.Venues, nil
}

package service

import (
	"context"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"go.uber.org/zap"
)

// CatalogBackend is the venue slice of the API client.
type CatalogBackend interface {
	VenuesByCategory(ctx context.Context, category model.Category) ([]model.Venue, error)
}

type VenueService struct {
	backend CatalogBackend
	logger  *zap.Logger
}

func NewVenueService(backend CatalogBackend, logger *zap.Logger) *VenueService {
	return &VenueService{
		backend: backend,
		logger:  logger,
	}
}

// ByCategory fetches the category's venues. A failed fetch is logged
// and rendered as an empty catalog, not an error: the screen shows
// "No ... venues found" either way.
func (s *VenueService) ByCategory(ctx context.Context, category model.Category) []model.Venue {
	venues, err := s.backend.VenuesByCategory(ctx, category)
	if err != nil {
		s.logger.Error("Failed to fetch venues",
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return nil
	}
	return venues
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCatalogBackend struct {
	venues []model.Venue
	err    error
}

func (f *fakeCatalogBackend) VenuesByCategory(ctx context.Context, category model.Category) ([]model.Venue, error) {
	return f.venues, f.err
}

func TestVenueService_ByCategory(t *testing.T) {
	backend := &fakeCatalogBackend{
		venues: []model.Venue{{ID: "v1", Name: "Garden Hall"}},
	}
	svc := NewVenueService(backend, zap.NewNop())

	venues := svc.ByCategory(context.Background(), model.CategoryWedding)

	assert.Len(t, venues, 1)
	assert.Equal(t, "Garden Hall", venues[0].Name)
}

func TestVenueService_ByCategory_FetchError(t *testing.T) {
	backend := &fakeCatalogBackend{err: errors.New("backend down")}
	svc := NewVenueService(backend, zap.NewNop())

	// A failed fetch renders as an empty list, never an error screen.
	venues := svc.ByCategory(context.Background(), model.CategoryParty)
	assert.Empty(t, venues)
}

func TestVenueService_ByCategory_Empty(t *testing.T) {
	svc := NewVenueService(&fakeCatalogBackend{}, zap.NewNop())

	venues := svc.ByCategory(context.Background(), model.CategoryPool)
	assert.Empty(t, venues)
}

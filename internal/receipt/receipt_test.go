package receipt

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	b := model.Booking{
		ID:            "bk-1",
		VenueName:     "Garden Hall",
		VenuePrice:    5000,
		EventType:     model.CategoryWedding,
		UserName:      "alice",
		Date:          time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TimeFormat:    model.TimeFormatWholeDay,
		Package:       model.PackageDeluxe,
		TotalPrice:    11500,
		PaymentStatus: model.PaymentStatusPaid,
	}

	data, err := Render(b)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 560, img.Bounds().Dy())
}

func TestRender_LongVenueName(t *testing.T) {
	b := model.Booking{
		ID:         "bk-2",
		VenueName:  "The Grand Pavilion and Conference Center of Metro Manila South",
		EventType:  model.CategoryParty,
		UserName:   "bob",
		Date:       time.Now(),
		TimeFormat: model.TimeFormatDay,
		Package:    model.PackageStandard,
		TotalPrice: 7000,
	}

	_, err := Render(b)
	require.NoError(t, err)
}

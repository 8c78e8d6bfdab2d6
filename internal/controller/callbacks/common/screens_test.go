package common

import (
	"testing"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVenueListScreen_EmptyCatalog(t *testing.T) {
	text, kb := BuildVenueListScreen(model.CategoryWedding, nil)

	assert.Equal(t, "No Wedding venues found", text)

	// Only the way back, no venue buttons.
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 1)
	assert.Equal(t, "back_categories", kb.InlineKeyboard[0][0].CallbackData)
}

func TestBuildVenueListScreen_EmptyCatalogPerCategory(t *testing.T) {
	want := map[model.Category]string{
		model.CategoryBirthday: "No Birthday venues found",
		model.CategoryWedding:  "No Wedding venues found",
		model.CategoryParty:    "No Party venues found",
		model.CategoryPool:     "No Pool venues found",
	}

	for category, text := range want {
		got, _ := BuildVenueListScreen(category, []model.Venue{})
		assert.Equal(t, text, got)
	}
}

func TestBuildVenueListScreen_VenueButtons(t *testing.T) {
	venues := []model.Venue{
		{ID: "v1", Name: "Garden Hall", Price: 5000},
		{ID: "v2", Name: "Sunset Pavilion", Price: 8000},
	}

	text, kb := BuildVenueListScreen(model.CategoryParty, venues)

	assert.Contains(t, text, "Best Places for Party")

	// One row per venue plus the back row.
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Equal(t, "venue:0", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "venue:1", kb.InlineKeyboard[1][0].CallbackData)
	assert.Contains(t, kb.InlineKeyboard[0][0].Text, "Garden Hall")
	assert.Contains(t, kb.InlineKeyboard[1][0].Text, "₱ 8,000")
	assert.Equal(t, "back_categories", kb.InlineKeyboard[2][0].CallbackData)
}

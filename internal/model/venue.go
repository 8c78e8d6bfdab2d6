package model

import "strings"

// Category is the venue category tag used both for browsing screens
// and as the event type of a booking made from that screen.
type Category string

const (
	CategoryBirthday Category = "Birthday"
	CategoryWedding  Category = "Wedding"
	CategoryParty    Category = "Party"
	CategoryPool     Category = "Pool"
)

// Categories in home-screen order.
func Categories() []Category {
	return []Category{CategoryBirthday, CategoryWedding, CategoryParty, CategoryPool}
}

// Slug returns the lowercase path segment the backend expects,
// e.g. GET /api/venues/wedding.
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

type Venue struct {
	ID       string `json:"venueID"`
	Name     string `json:"venueName"`
	Location string `json:"venueLocation"`
	Details  string `json:"venueDetails"`
	Price    int    `json:"venuePrice"`
	Picture  string `json:"venuePicture"`
}

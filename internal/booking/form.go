package booking

import (
	"errors"
	"time"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
)

// ErrNameRequired rejects submission of a form without an attendee
// name. It is the only local validation the form performs; date, time
// format and package all carry safe defaults.
var ErrNameRequired = errors.New("attendee name is required")

// Form holds the user's booking selections for one venue. The total
// price is derived state: it always equals the venue base price plus
// the selected package's surcharge and is recomputed on every package
// change, never fetched.
type Form struct {
	Venue        model.Venue
	EventType    model.Category
	Date         time.Time
	TimeFormat   model.TimeFormat
	Package      model.Package
	AttendeeName string
	TotalPrice   int
}

// NewForm starts a form with the defaults the booking screen shows:
// today, Day format, Standard package, and the session username as
// the attendee.
func NewForm(venue model.Venue, eventType model.Category, defaultName string) *Form {
	now := time.Now()
	f := &Form{
		Venue:        venue,
		EventType:    eventType,
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		TimeFormat:   model.TimeFormatDay,
		AttendeeName: defaultName,
	}
	f.SetPackage(model.PackageStandard)
	return f
}

// SetPackage selects a package tier and recomputes the total.
func (f *Form) SetPackage(p model.Package) {
	f.Package = p
	f.TotalPrice = f.Venue.Price + p.Surcharge()
}

func (f *Form) SetTimeFormat(tf model.TimeFormat) {
	f.TimeFormat = tf
}

func (f *Form) SetDate(d time.Time) {
	f.Date = d
}

func (f *Form) SetAttendeeName(name string) {
	f.AttendeeName = name
}

// Validate gates submission; it must pass before any network call.
func (f *Form) Validate() error {
	if f.AttendeeName == "" {
		return ErrNameRequired
	}
	return nil
}

// Request builds the submission payload for the given account.
func (f *Form) Request(userID int64) api.CreateBookingRequest {
	return api.CreateBookingRequest{
		VenueID:       f.Venue.ID,
		EventType:     string(f.EventType),
		UserID:        userID,
		UserName:      f.AttendeeName,
		BookingDate:   f.Date.Format(time.RFC3339),
		DayFormat:     string(f.TimeFormat),
		VenueName:     f.Venue.Name,
		VenuePrice:    f.Venue.Price,
		Package:       string(f.Package),
		TotalPrice:    f.TotalPrice,
		PaymentStatus: string(model.PaymentStatusNotPaid),
	}
}

// Booking materialises the confirmed booking once the backend has
// assigned an ID.
func (f *Form) Booking(bookingID string, userID int64) model.Booking {
	return model.Booking{
		ID:            bookingID,
		VenueID:       f.Venue.ID,
		VenueName:     f.Venue.Name,
		VenuePrice:    f.Venue.Price,
		EventType:     f.EventType,
		UserID:        userID,
		UserName:      f.AttendeeName,
		Date:          f.Date,
		TimeFormat:    f.TimeFormat,
		Package:       f.Package,
		TotalPrice:    f.TotalPrice,
		PaymentStatus: model.PaymentStatusNotPaid,
	}
}

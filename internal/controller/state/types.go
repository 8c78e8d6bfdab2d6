package state

// DialogState is the step of a multi-message dialog a chat is in.
type DialogState string

const (
	StateNone DialogState = ""

	// Login
	StateLoginEmail    DialogState = "login_email"
	StateLoginPassword DialogState = "login_password"

	// Sign up
	StateSignupEmail    DialogState = "signup_email"
	StateSignupUsername DialogState = "signup_username"
	StateSignupPhone    DialogState = "signup_phone"
	StateSignupPassword DialogState = "signup_password"

	// Password reset
	StateForgotEmail       DialogState = "forgot_email"
	StateForgotOTP         DialogState = "forgot_otp"
	StateForgotNewPassword DialogState = "forgot_new_password"

	// Booking form
	StateBookingDate DialogState = "booking_date"
	StateBookingName DialogState = "booking_name"

	// Edit profile
	StateEditUsername DialogState = "edit_username"
	StateEditEmail    DialogState = "edit_email"
	StateEditPhone    DialogState = "edit_phone"
)

// Data bag keys shared between command and callback handlers.
const (
	KeyBookingForm    = "booking_form"   // *booking.Form
	KeyVenues         = "venues"         // []model.Venue, last fetched list
	KeyCategory       = "category"       // model.Category of the venue list
	KeyVenueIndex     = "venue_index"    // int, selected venue in KeyVenues
	KeyPayments       = "payments"       // []model.Payment, profile history
	KeyLoginEmail     = "login_email"    // string
	KeySignupEmail    = "signup_email"   // string
	KeySignupUsername = "signup_username"
	KeySignupPhone    = "signup_phone"
	KeyForgotEmail    = "forgot_email" // string
)

// ChatData is a chat's dialog state plus its scratch data.
type ChatData struct {
	State DialogState
	Data  map[string]interface{}
}

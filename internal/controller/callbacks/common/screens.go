package common

import (
	"fmt"
	"strconv"

	"github.com/Freeeeeet/venuebook_bot/internal/booking"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"github.com/go-telegram/bot/models"
)

var categoryEmoji = map[model.Category]string{
	model.CategoryBirthday: "🎂",
	model.CategoryWedding:  "💍",
	model.CategoryParty:    "🎉",
	model.CategoryPool:     "🏊",
}

// BuildWelcomeScreen is the /start screen.
func BuildWelcomeScreen(loggedIn bool) (string, *models.InlineKeyboardMarkup) {
	text := "🏛 <b>VenueBook</b>\n\n" +
		"Find and book the perfect venue for your event:\n" +
		"birthdays, weddings, parties and pool events.\n"

	kb := keyboard.NewBuilder()
	if loggedIn {
		text += "\nYou are logged in. Pick a category to get started."
		kb.Row(keyboard.Button("🏛 Browse venues", "back_categories"))
		kb.Row(keyboard.Button("👤 My profile", "profile"))
	} else {
		kb.Row(keyboard.Button("🔑 Log in", "login"))
		kb.Row(keyboard.Button("🆕 Sign up", "signup"))
		kb.Row(keyboard.Button("🔐 Forgot password?", "forgot"))
	}

	return text, kb.Build()
}

// BuildCategoriesScreen is the home screen: one button per category.
func BuildCategoriesScreen() (string, *models.InlineKeyboardMarkup) {
	text := "🏛 <b>What are you celebrating?</b>\n\nPick a category to see its venues:"

	kb := keyboard.NewBuilder()
	kb.Row(
		keyboard.Button(categoryEmoji[model.CategoryBirthday]+" Birthday", "cat:Birthday"),
		keyboard.Button(categoryEmoji[model.CategoryWedding]+" Wedding", "cat:Wedding"),
	)
	kb.Row(
		keyboard.Button(categoryEmoji[model.CategoryParty]+" Party", "cat:Party"),
		keyboard.Button(categoryEmoji[model.CategoryPool]+" Pool", "cat:Pool"),
	)
	kb.Row(keyboard.Button("👤 My profile", "profile"))

	return text, kb.Build()
}

// BuildVenueListScreen lists a category's venues. Buttons carry the
// index into the freshly fetched list the chat's data bag holds.
func BuildVenueListScreen(category model.Category, venues []model.Venue) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()

	if len(venues) == 0 {
		text := fmt.Sprintf("No %s venues found", category)
		kb.Row(keyboard.Button("⬅️ Back", "back_categories"))
		return text, kb.Build()
	}

	text := fmt.Sprintf("%s <b>Best Places for %s</b>\n\nSelect a venue for details:",
		categoryEmoji[category], category)

	for i, v := range venues {
		label := fmt.Sprintf("%s — %s", v.Name, formatting.FormatPrice(v.Price))
		kb.Row(keyboard.Button(label, "venue:"+strconv.Itoa(i)))
	}
	kb.Row(keyboard.Button("⬅️ Back", "back_categories"))

	return text, kb.Build()
}

// BuildVenueDetailScreen shows one venue with a booking entry point.
func BuildVenueDetailScreen(venue model.Venue, category model.Category) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"%s <b>%s</b>\n\n"+
			"📍 %s\n"+
			"💰 Base price: %s\n\n"+
			"%s",
		categoryEmoji[category],
		venue.Name,
		venue.Location,
		formatting.FormatPrice(venue.Price),
		venue.Details,
	)

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.Button("📅 Book now", "book"))
	kb.Row(keyboard.Button("⬅️ Back", "cat:"+string(category)))

	return text, kb.Build()
}

// BuildBookingFormScreen renders the booking form with the current
// selections; the active package and time format are ticked.
func BuildBookingFormScreen(form *booking.Form) (string, *models.InlineKeyboardMarkup) {
	name := form.AttendeeName
	if name == "" {
		name = "— not set —"
	}

	text := fmt.Sprintf(
		"📝 <b>Book Your %s Event</b>\n\n"+
			"🏛 Venue: %s\n"+
			"💰 Venue price: %s\n"+
			"🎁 Package: %s (+%s)\n"+
			"🕐 Time format: %s\n"+
			"📅 Date: %s\n"+
			"👤 Attendee: %s\n\n"+
			"💵 <b>Total Price: %s</b>",
		form.EventType,
		form.Venue.Name,
		formatting.FormatPrice(form.Venue.Price),
		form.Package,
		formatting.FormatPrice(form.Package.Surcharge()),
		form.TimeFormat,
		form.Date.Format("January 2, 2006"),
		name,
		formatting.FormatPrice(form.TotalPrice),
	)

	kb := keyboard.NewBuilder()

	var pkgRow []models.InlineKeyboardButton
	for _, p := range model.Packages() {
		label := string(p)
		if p == form.Package {
			label = "✓ " + label
		}
		pkgRow = append(pkgRow, keyboard.Button(label, "pkg:"+string(p)))
	}
	kb.Row(pkgRow...)

	formats := model.TimeFormats()
	for i := 0; i < len(formats); i += 2 {
		var row []models.InlineKeyboardButton
		for _, f := range formats[i:min(i+2, len(formats))] {
			label := string(f)
			if f == form.TimeFormat {
				label = "✓ " + label
			}
			row = append(row, keyboard.Button(label, "fmt:"+string(f)))
		}
		kb.Row(row...)
	}

	kb.Row(keyboard.Button("📅 Change date", "form_date"))
	kb.Row(keyboard.Button("✏️ Attendee name", "form_name"))
	kb.Row(keyboard.Button("✅ Confirm Booking", "form_confirm"))
	kb.Row(keyboard.Button("⬅️ Back", "book_back"))

	return text, kb.Build()
}

// BuildPaymentScreen shows the unpaid booking summary. Before an
// approval URL exists the primary action creates the provider order;
// afterwards it opens the provider page.
func BuildPaymentScreen(b model.Booking, approvalURL string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"💳 <b>Payment Details</b>\n\n"+
			"🧾 Booking ID: %s\n"+
			"🏛 Venue: %s\n"+
			"🎊 Event Type: %s\n"+
			"📅 Date: %s\n"+
			"🕐 Day Format: %s\n"+
			"🎁 Package: %s\n"+
			"👤 Booked by: %s\n"+
			"💵 Price: %s\n"+
			"📌 Payment Status: %s",
		b.ID,
		b.VenueName,
		b.EventType,
		b.Date.Format("January 2, 2006"),
		b.TimeFormat,
		b.Package,
		b.UserName,
		formatting.FormatPrice(b.TotalPrice),
		b.PaymentStatus,
	)

	kb := keyboard.NewBuilder()
	if approvalURL == "" {
		kb.Row(keyboard.Button("💳 Pay with PayPal", "pay"))
	} else {
		text += "\n\nOpen the payment page and approve the payment. " +
			"I will confirm here as soon as the provider reports back."
		kb.Row(keyboard.URLButton("💳 Open payment page", approvalURL))
	}
	kb.Row(keyboard.Button("❌ Cancel booking", "pay_cancel"))

	return text, kb.Build()
}

// BuildCancelConfirmScreen is the cancellation guard's prompt.
func BuildCancelConfirmScreen() (string, *models.InlineKeyboardMarkup) {
	text := "❓ <b>Cancel Booking?</b>\n\n" +
		"Your booking is not paid yet. Do you want to cancel it?"

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.Button("✅ Yes, cancel booking", "pay_cancel_yes"))
	kb.Row(keyboard.Button("↩️ No, resume payment", "pay_cancel_no"))

	return text, kb.Build()
}

// BuildProfileScreen shows the account and its payment history.
func BuildProfileScreen(sess *session.Session, payments []model.Payment) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"👤 <b>%s</b>\n✉️ %s\n\n<b>Your Payments</b>",
		sess.Username,
		sess.Email,
	)
	if len(payments) == 0 {
		text += "\n\nNo payments yet."
	}

	kb := keyboard.NewBuilder()
	for i, p := range payments {
		label := fmt.Sprintf("%s · %s · %s", p.VenueName, p.EventType, p.PaymentStatus)
		kb.Row(keyboard.Button(label, "payment:"+strconv.Itoa(i)))
	}
	kb.Row(keyboard.Button("✏️ Edit profile", "edit_profile"))
	kb.Row(keyboard.Button("⚙️ Settings", "settings"))
	kb.Row(keyboard.Button("⬅️ Back", "back_categories"))

	return text, kb.Build()
}

// BuildPaymentDetailScreen shows one payment history entry.
func BuildPaymentDetailScreen(p model.Payment) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"🧾 <b>%s</b>\n\n"+
			"🎊 Event Type: %s\n"+
			"📅 Date: %s\n"+
			"🕐 Day Format: %s\n"+
			"🎁 Package: %s\n"+
			"💵 Total Price: %s\n"+
			"📌 Payment Status: %s",
		p.VenueName,
		p.EventType,
		p.Date,
		p.DayFormat,
		p.Package,
		formatting.FormatPrice(p.Price),
		p.PaymentStatus,
	)

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.Button("⬅️ Back", "profile"))

	return text, kb.Build()
}

// BuildEditProfileScreen lets the user pick which field to change.
func BuildEditProfileScreen(sess *session.Session) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"✏️ <b>Edit Profile</b>\n\n"+
			"👤 Username: %s\n"+
			"✉️ Email: %s\n\n"+
			"What would you like to change?",
		sess.Username,
		sess.Email,
	)

	kb := keyboard.NewBuilder()
	kb.Row(
		keyboard.Button("👤 Username", "edit_field_username"),
		keyboard.Button("✉️ Email", "edit_field_email"),
	)
	kb.Row(keyboard.Button("📱 Phone number", "edit_field_phone"))
	kb.Row(keyboard.Button("⬅️ Back", "profile"))

	return text, kb.Build()
}

// BuildSettingsScreen mirrors the app's settings screen: logout lives here.
func BuildSettingsScreen() (string, *models.InlineKeyboardMarkup) {
	text := "⚙️ <b>Settings</b>"

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.Button("🚪 Log out", "logout"))
	kb.Row(keyboard.Button("⬅️ Back", "profile"))

	return text, kb.Build()
}

// BuildLogoutConfirmScreen asks before dropping the session.
func BuildLogoutConfirmScreen() (string, *models.InlineKeyboardMarkup) {
	text := "❓ Log out of VenueBook?"

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.Button("✅ Yes, log out", "logout_yes"))
	kb.Row(keyboard.Button("↩️ No", "settings"))

	return text, kb.Build()
}

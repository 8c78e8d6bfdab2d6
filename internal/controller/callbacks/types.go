package callbacks

import (
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/payment"
	"github.com/Freeeeeet/venuebook_bot/internal/service"
	"go.uber.org/zap"
)

// Exact-match callback data values. Parameterised actions ("cat:...",
// "venue:...", "pkg:...") are matched by prefix in the router.
const (
	Login          = "login"
	Signup         = "signup"
	Forgot         = "forgot"
	Profile        = "profile"
	Settings       = "settings"
	Logout         = "logout"
	LogoutYes      = "logout_yes"
	EditProfile    = "edit_profile"
	EditUsername   = "edit_field_username"
	EditEmail      = "edit_field_email"
	EditPhone      = "edit_field_phone"
	BackCategories = "back_categories"
	Book           = "book"
	BookBack       = "book_back"
	FormDate       = "form_date"
	FormName       = "form_name"
	FormConfirm    = "form_confirm"
	Pay            = "pay"
	PayCancel      = "pay_cancel"
	PayCancelYes   = "pay_cancel_yes"
	PayCancelNo    = "pay_cancel_no"
)

// Handler processes inline-button callbacks.
type Handler struct {
	userService    *service.UserService
	venueService   *service.VenueService
	bookingService *service.BookingService
	stateManager   *state.Manager
	payments       *payment.Registry
	paymentBackend payment.Backend
	logger         *zap.Logger
}

func NewHandler(
	userService *service.UserService,
	venueService *service.VenueService,
	bookingService *service.BookingService,
	stateManager *state.Manager,
	payments *payment.Registry,
	paymentBackend payment.Backend,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:    userService,
		venueService:   venueService,
		bookingService: bookingService,
		stateManager:   stateManager,
		payments:       payments,
		paymentBackend: paymentBackend,
		logger:         logger,
	}
}

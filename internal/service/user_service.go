package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"go.uber.org/zap"
)

// Local validation errors, surfaced to the user before any network call.
var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrFieldsRequired      = errors.New("all fields are required")
	ErrNotLoggedIn         = errors.New("not logged in")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AccountBackend is the auth/profile slice of the API client.
type AccountBackend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (int64, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*model.User, error)
	UserPayments(ctx context.Context, userID int64) ([]model.Payment, error)
}

// SessionStore persists the chat's session token and identity.
type SessionStore interface {
	Save(ctx context.Context, sess *session.Session) error
	Get(ctx context.Context, chatID int64) (*session.Session, error)
	Delete(ctx context.Context, chatID int64) error
}

type UserService struct {
	backend  AccountBackend
	sessions SessionStore
	logger   *zap.Logger
}

func NewUserService(backend AccountBackend, sessions SessionStore, logger *zap.Logger) *UserService {
	return &UserService{
		backend:  backend,
		sessions: sessions,
		logger:   logger,
	}
}

// Login validates credentials locally, authenticates against the
// backend and binds the returned account to the chat.
func (s *UserService) Login(ctx context.Context, chatID int64, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{
		ChatID:     chatID,
		Token:      resp.Token,
		UserID:     resp.User.UserID,
		Username:   resp.User.Username,
		Email:      resp.User.Email,
		ProfilePic: resp.User.ProfilePic,
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info("User logged in",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", sess.UserID),
	)

	return sess, nil
}

// Signup registers a new account; the user still logs in afterwards.
func (s *UserService) Signup(ctx context.Context, req api.SignupRequest) (int64, error) {
	if req.Email == "" || req.Username == "" || req.PhoneNumber == "" || req.Password == "" {
		return 0, ErrFieldsRequired
	}
	if !emailRe.MatchString(req.Email) {
		return 0, ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return 0, ErrPasswordTooShort
	}

	userID, err := s.backend.Signup(ctx, req)
	if err != nil {
		return 0, err
	}

	s.logger.Info("User signed up", zap.Int64("user_id", userID))
	return userID, nil
}

// Session returns the chat's session, or nil when logged out.
func (s *UserService) Session(ctx context.Context, chatID int64) (*session.Session, error) {
	return s.sessions.Get(ctx, chatID)
}

// Logout drops the chat's session.
func (s *UserService) Logout(ctx context.Context, chatID int64) error {
	if err := s.sessions.Delete(ctx, chatID); err != nil {
		return err
	}
	s.logger.Info("User logged out", zap.Int64("chat_id", chatID))
	return nil
}

func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return s.backend.ForgotPassword(ctx, email)
}

func (s *UserService) VerifyOTP(ctx context.Context, email, otp string) error {
	if otp == "" {
		return ErrFieldsRequired
	}
	return s.backend.VerifyOTP(ctx, email, otp)
}

func (s *UserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return ErrFieldsRequired
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	return s.backend.ResetPassword(ctx, email, newPassword)
}

// UpdateProfile sends only the changed fields and refreshes the stored
// session with whatever the backend confirmed.
func (s *UserService) UpdateProfile(ctx context.Context, sess *session.Session, req api.UpdateProfileRequest) (*session.Session, error) {
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	req.CurrentEmail = sess.Email

	user, err := s.backend.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	if user.Username != "" {
		sess.Username = user.Username
	}
	if user.Email != "" {
		sess.Email = user.Email
	}
	if user.ProfilePic != "" {
		sess.ProfilePic = user.ProfilePic
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return sess, nil
}

// Payments fetches the account's payment history for the profile screen.
func (s *UserService) Payments(ctx context.Context, sess *session.Session) ([]model.Payment, error) {
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	return s.backend.UserPayments(ctx, sess.UserID)
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a session token and the account data.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/api/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login: backend returned no token")
	}
	return &out, nil
}

type SignupRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type SignupResponse struct {
	UserID int64 `json:"userID"`
}

// Signup registers a new account. A duplicate email comes back as a
// 409 *Error with the backend's reason.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (int64, error) {
	var out SignupResponse
	if err := c.post(ctx, "/api/signup", req, &out); err != nil {
		return 0, fmt.Errorf("signup: %w", err)
	}
	return out.UserID, nil
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ForgotPassword asks the backend to email an OTP.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	var out statusResponse
	if err := c.post(ctx, "/api/forgot-password", map[string]string{"email": email}, &out); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("forgot password: %s", fallback(out.Message, "failed to send OTP"))
	}
	return nil
}

// VerifyOTP checks the one-time code from the reset email.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	var out statusResponse
	if err := c.post(ctx, "/api/verify-otp", map[string]string{"email": email, "otp": otp}, &out); err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("verify otp: %s", fallback(out.Message, "invalid OTP"))
	}
	return nil
}

// ResetPassword sets a new password after a verified OTP.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	var out statusResponse
	if err := c.post(ctx, "/api/reset-password", map[string]string{"email": email, "newPassword": newPassword}, &out); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("reset password: %s", fallback(out.Message, "failed to reset password"))
	}
	return nil
}

// UpdateProfileRequest carries only the fields the user changed;
// currentEmail identifies the account.
type UpdateProfileRequest struct {
	CurrentEmail string `json:"currentEmail"`
	Username     string `json:"username,omitempty"`
	NewEmail     string `json:"newEmail,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	ProfilePic   string `json:"profilePic,omitempty"`
}

// UpdateProfile applies profile changes and returns the updated account.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPut, "/api/user/update", nil, req, &out); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &out, nil
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

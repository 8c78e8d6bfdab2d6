package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccountBackend struct {
	loginCalls int
	loginResp  *api.LoginResponse
	loginErr   error

	signupID  int64
	signupErr error

	updateUser *model.User
	updateReq  api.UpdateProfileRequest
	updateErr  error

	payments []model.Payment
}

func (f *fakeAccountBackend) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAccountBackend) Signup(ctx context.Context, req api.SignupRequest) (int64, error) {
	return f.signupID, f.signupErr
}

func (f *fakeAccountBackend) ForgotPassword(ctx context.Context, email string) error { return nil }

func (f *fakeAccountBackend) VerifyOTP(ctx context.Context, email, otp string) error { return nil }

func (f *fakeAccountBackend) ResetPassword(ctx context.Context, email, newPassword string) error {
	return nil
}

func (f *fakeAccountBackend) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*model.User, error) {
	f.updateReq = req
	return f.updateUser, f.updateErr
}

func (f *fakeAccountBackend) UserPayments(ctx context.Context, userID int64) ([]model.Payment, error) {
	return f.payments, nil
}

type fakeSessionStore struct {
	saved   *session.Session
	deleted bool
	saveErr error
}

func (f *fakeSessionStore) Save(ctx context.Context, sess *session.Session) error {
	f.saved = sess
	return f.saveErr
}

func (f *fakeSessionStore) Get(ctx context.Context, chatID int64) (*session.Session, error) {
	return f.saved, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, chatID int64) error {
	f.deleted = true
	f.saved = nil
	return nil
}

func TestUserService_Login(t *testing.T) {
	backend := &fakeAccountBackend{
		loginResp: &api.LoginResponse{
			Token: "abc",
			User:  model.User{UserID: 7, Username: "alice", Email: "alice@example.com"},
		},
	}
	store := &fakeSessionStore{}
	svc := NewUserService(backend, store, zap.NewNop())

	sess, err := svc.Login(context.Background(), 100, "alice@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, int64(100), sess.ChatID)
	assert.Equal(t, "abc", sess.Token)
	assert.Equal(t, int64(7), sess.UserID)
	require.NotNil(t, store.saved)
	assert.Equal(t, "abc", store.saved.Token)
}

func TestUserService_Login_Validation(t *testing.T) {
	backend := &fakeAccountBackend{}
	svc := NewUserService(backend, &fakeSessionStore{}, zap.NewNop())

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"empty email", "", "secret1", ErrCredentialsRequired},
		{"empty password", "alice@example.com", "", ErrCredentialsRequired},
		{"bad email", "not-an-email", "secret1", ErrInvalidEmail},
		{"short password", "alice@example.com", "abc", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), 100, tt.email, tt.password)
			require.ErrorIs(t, err, tt.want)
		})
	}
	// None of the rejected attempts may hit the backend.
	assert.Zero(t, backend.loginCalls)
}

func TestUserService_Login_BackendError(t *testing.T) {
	backend := &fakeAccountBackend{loginErr: errors.New("invalid credentials")}
	store := &fakeSessionStore{}
	svc := NewUserService(backend, store, zap.NewNop())

	_, err := svc.Login(context.Background(), 100, "alice@example.com", "secret1")

	require.Error(t, err)
	assert.Nil(t, store.saved)
}

func TestUserService_Signup_Validation(t *testing.T) {
	svc := NewUserService(&fakeAccountBackend{}, &fakeSessionStore{}, zap.NewNop())

	_, err := svc.Signup(context.Background(), api.SignupRequest{
		Email: "alice@example.com", Username: "alice", Password: "secret1",
	})
	require.ErrorIs(t, err, ErrFieldsRequired)

	_, err = svc.Signup(context.Background(), api.SignupRequest{
		Email: "bad", Username: "alice", PhoneNumber: "0917", Password: "secret1",
	})
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUserService_Signup(t *testing.T) {
	backend := &fakeAccountBackend{signupID: 9}
	svc := NewUserService(backend, &fakeSessionStore{}, zap.NewNop())

	id, err := svc.Signup(context.Background(), api.SignupRequest{
		Email: "alice@example.com", Username: "alice", PhoneNumber: "0917", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestUserService_Logout(t *testing.T) {
	store := &fakeSessionStore{saved: &session.Session{ChatID: 100}}
	svc := NewUserService(&fakeAccountBackend{}, store, zap.NewNop())

	require.NoError(t, svc.Logout(context.Background(), 100))
	assert.True(t, store.deleted)

	sess, err := svc.Session(context.Background(), 100)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestUserService_ResetPassword_Validation(t *testing.T) {
	svc := NewUserService(&fakeAccountBackend{}, &fakeSessionStore{}, zap.NewNop())

	require.ErrorIs(t, svc.ResetPassword(context.Background(), "a@b.co", ""), ErrFieldsRequired)
	require.ErrorIs(t, svc.ResetPassword(context.Background(), "a@b.co", "abc"), ErrPasswordTooShort)
	require.NoError(t, svc.ResetPassword(context.Background(), "a@b.co", "secret1"))
}

func TestUserService_UpdateProfile(t *testing.T) {
	backend := &fakeAccountBackend{
		updateUser: &model.User{Username: "alice2"},
	}
	store := &fakeSessionStore{}
	svc := NewUserService(backend, store, zap.NewNop())

	sess := &session.Session{ChatID: 100, UserID: 7, Username: "alice", Email: "alice@example.com"}

	updated, err := svc.UpdateProfile(context.Background(), sess, api.UpdateProfileRequest{Username: "alice2"})

	require.NoError(t, err)
	// The account is addressed by its current email, taken from the session.
	assert.Equal(t, "alice@example.com", backend.updateReq.CurrentEmail)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	require.NotNil(t, store.saved)
}

func TestUserService_UpdateProfile_NotLoggedIn(t *testing.T) {
	svc := NewUserService(&fakeAccountBackend{}, &fakeSessionStore{}, zap.NewNop())

	_, err := svc.UpdateProfile(context.Background(), nil, api.UpdateProfileRequest{Username: "x"})
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestUserService_Payments(t *testing.T) {
	backend := &fakeAccountBackend{
		payments: []model.Payment{{BookingID: "bk-1", VenueName: "Garden Hall"}},
	}
	svc := NewUserService(backend, &fakeSessionStore{}, zap.NewNop())

	payments, err := svc.Payments(context.Background(), &session.Session{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = svc.Payments(context.Background(), nil)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

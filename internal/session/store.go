package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session binds a chat to a backend account. It is created at login,
// replaced on re-login and deleted at logout; the token is the only
// piece of client state that survives a restart.
type Session struct {
	ChatID     int64
	Token      string
	UserID     int64
	Username   string
	Email      string
	ProfilePic string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Save upserts the chat's session. A fresh login overwrites whatever
// account was bound to the chat before.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	query := `
		INSERT INTO sessions (chat_id, token, user_id, username, email, profile_pic)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (chat_id) DO UPDATE
		SET token = EXCLUDED.token,
		    user_id = EXCLUDED.user_id,
		    username = EXCLUDED.username,
		    email = EXCLUDED.email,
		    profile_pic = EXCLUDED.profile_pic,
		    updated_at = now()
		RETURNING created_at, updated_at
	`

	err := s.pool.QueryRow(
		ctx, query,
		sess.ChatID,
		sess.Token,
		sess.UserID,
		sess.Username,
		sess.Email,
		sess.ProfilePic,
	).Scan(&sess.CreatedAt, &sess.UpdatedAt)

	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Get returns the chat's session, or nil if the chat is not logged in.
func (s *Store) Get(ctx context.Context, chatID int64) (*Session, error) {
	query := `
		SELECT chat_id, token, user_id, username, email, profile_pic, created_at, updated_at
		FROM sessions
		WHERE chat_id = $1
	`

	var sess Session
	err := s.pool.QueryRow(ctx, query, chatID).Scan(
		&sess.ChatID,
		&sess.Token,
		&sess.UserID,
		&sess.Username,
		&sess.Email,
		&sess.ProfilePic,
		&sess.CreatedAt,
		&sess.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &sess, nil
}

// Delete removes the chat's session at logout.
func (s *Store) Delete(ctx context.Context, chatID int64) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

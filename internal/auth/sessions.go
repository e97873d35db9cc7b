package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"gorm.io/gorm"
)

// Sessions issues, resolves and revokes opaque session tokens backed by
// the relational store.
type Sessions struct {
	repo repositories.SessionRepository
	ttl  time.Duration
}

// NewSessions creates a session manager with the given token lifetime.
func NewSessions(repo repositories.SessionRepository, ttl time.Duration) *Sessions {
	return &Sessions{repo: repo, ttl: ttl}
}

// Begin binds a new session to the user and returns its opaque token.
func (s *Sessions) Begin(ctx context.Context, user *models.User) (string, error) {
	session := &models.Session{
		Token:     randomHex(16),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return "", err
	}
	return session.Token, nil
}

// Resolve returns the user bound to the token, or nil when the token is
// unknown or expired. Expired sessions are deleted on read.
func (s *Sessions) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.repo.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired() {
		_ = s.repo.DeleteSessionByToken(ctx, token)
		return nil, nil
	}
	return &session.User, nil
}

// End unbinds the session. Ending a session that does not exist is not
// an error; logout is idempotent.
func (s *Sessions) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSessionByToken(ctx, token)
}

// NewCSRFToken mints a fresh anti-forgery token.
func NewCSRFToken() string {
	return randomHex(16)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

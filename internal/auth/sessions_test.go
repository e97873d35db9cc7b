package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/cliphaven/backend/internal/auth"
	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestSessions(t *testing.T, ttl time.Duration) (*auth.Sessions, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := &models.User{FirstName: "A", LastName: "B", Username: "ab", Email: "a@b.com", PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return auth.NewSessions(repositories.NewPostgresSessionRepository(db), ttl), user
}

func TestSessions_BeginResolve(t *testing.T) {
	sessions, user := newTestSessions(t, time.Hour)
	ctx := context.Background()

	token, err := sessions.Begin(ctx, user)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if len(token) != 32 {
		t.Fatalf("expected 32-char hex token, got %q", token)
	}

	resolved, err := sessions.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved == nil || resolved.ID != user.ID {
		t.Fatalf("expected user %d, got %+v", user.ID, resolved)
	}
}

func TestSessions_ResolveUnknownToken(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)

	resolved, err := sessions.Resolve(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected nil identity, got %+v", resolved)
	}
}

func TestSessions_ExpiredTokenIsAbsent(t *testing.T) {
	sessions, user := newTestSessions(t, -time.Minute)
	ctx := context.Background()

	token, err := sessions.Begin(ctx, user)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	resolved, err := sessions.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected expired session to resolve to nil, got %+v", resolved)
	}
}

func TestSessions_EndIsIdempotent(t *testing.T) {
	sessions, user := newTestSessions(t, time.Hour)
	ctx := context.Background()

	token, err := sessions.Begin(ctx, user)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := sessions.End(ctx, token); err != nil {
		t.Fatalf("end: %v", err)
	}
	if err := sessions.End(ctx, token); err != nil {
		t.Fatalf("second end should be a no-op: %v", err)
	}

	resolved, err := sessions.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected ended session to resolve to nil, got %+v", resolved)
	}
}

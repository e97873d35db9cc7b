package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Follow{},
		&models.Clip{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, users repositories.UserRepository, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
	}
	if err := users.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	ctx := context.Background()

	createUser(t, users, "ab", "a@b.com")

	dupUsername := &models.User{Username: "ab", Email: "other@b.com", PasswordHash: "hash"}
	if err := users.CreateUser(ctx, dupUsername); err == nil {
		t.Fatal("expected duplicate username to fail")
	}

	dupEmail := &models.User{Username: "other", Email: "a@b.com", PasswordHash: "hash"}
	if err := users.CreateUser(ctx, dupEmail); err == nil {
		t.Fatal("expected duplicate email to fail")
	}
}

func TestUserRepository_GetByEmailNotFound(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)

	_, err := users.GetUserByEmail(context.Background(), "nobody@b.com")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestFollowRepository_CountsTrackEdges(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	follows := repositories.NewPostgresFollowRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice", "alice@b.com")
	bob := createUser(t, users, "bob", "bob@b.com")

	if err := follows.CreateFollow(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}); err != nil {
		t.Fatalf("create follow: %v", err)
	}

	// Adding one edge increments exactly one side of each user
	bobFollowers, _ := follows.GetFollowersCount(ctx, bob.ID)
	bobFollowing, _ := follows.GetFollowingCount(ctx, bob.ID)
	aliceFollowers, _ := follows.GetFollowersCount(ctx, alice.ID)
	aliceFollowing, _ := follows.GetFollowingCount(ctx, alice.ID)

	if bobFollowers != 1 || bobFollowing != 0 {
		t.Fatalf("bob counts: followers=%d following=%d", bobFollowers, bobFollowing)
	}
	if aliceFollowers != 0 || aliceFollowing != 1 {
		t.Fatalf("alice counts: followers=%d following=%d", aliceFollowers, aliceFollowing)
	}
}

func TestFollowRepository_PairIsUnique(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	follows := repositories.NewPostgresFollowRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice", "alice@b.com")
	bob := createUser(t, users, "bob", "bob@b.com")

	if err := follows.CreateFollow(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}); err != nil {
		t.Fatalf("create follow: %v", err)
	}
	if err := follows.CreateFollow(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}); err == nil {
		t.Fatal("expected duplicate follow pair to fail")
	}
	// Reverse direction is a distinct edge
	if err := follows.CreateFollow(ctx, &models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}); err != nil {
		t.Fatalf("reverse follow should succeed: %v", err)
	}
}

func TestFollowRepository_DeleteMissingEdge(t *testing.T) {
	db := newTestDB(t)
	follows := repositories.NewPostgresFollowRepository(db)

	if err := follows.DeleteFollow(context.Background(), 1, 2); err == nil {
		t.Fatal("expected delete of missing edge to fail")
	}
}

func TestFollowRepository_Lists(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	follows := repositories.NewPostgresFollowRepository(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice", "alice@b.com")
	bob := createUser(t, users, "bob", "bob@b.com")
	carol := createUser(t, users, "carol", "carol@b.com")

	_ = follows.CreateFollow(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: carol.ID})
	_ = follows.CreateFollow(ctx, &models.Follow{FollowerID: bob.ID, FollowingID: carol.ID})

	followers, err := follows.GetFollowers(ctx, carol.ID)
	if err != nil {
		t.Fatalf("get followers: %v", err)
	}
	if len(followers) != 2 {
		t.Fatalf("expected 2 followers, got %d", len(followers))
	}

	following, err := follows.GetFollowing(ctx, alice.ID)
	if err != nil {
		t.Fatalf("get following: %v", err)
	}
	if len(following) != 1 || following[0].Username != "carol" {
		t.Fatalf("unexpected following list: %+v", following)
	}
}

func TestCommentRepository_ViewsResolveCreator(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	clips := repositories.NewPostgresClipRepository(db)
	comments := repositories.NewPostgresCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, users, "author", "author@b.com")
	clip := &models.Clip{UserID: author.ID, Title: "first", VideoURL: "https://cdn.test/v.mp4"}
	if err := clips.CreateClip(ctx, clip); err != nil {
		t.Fatalf("create clip: %v", err)
	}

	if err := comments.CreateComment(ctx, &models.Comment{UserID: author.ID, ClipID: clip.ID, Body: "nice"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	views, err := comments.GetCommentsByClipID(ctx, clip.ID)
	if err != nil {
		t.Fatalf("get comments: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(views))
	}
	if views[0].Creator != "author" || views[0].Body != "nice" {
		t.Fatalf("unexpected view: %+v", views[0])
	}
}

func TestCommentRepository_CascadeOnClipDelete(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	clips := repositories.NewPostgresClipRepository(db)
	comments := repositories.NewPostgresCommentRepository(db)
	ctx := context.Background()

	author := createUser(t, users, "author", "author@b.com")
	clip := &models.Clip{UserID: author.ID, Title: "doomed", VideoURL: "https://cdn.test/v.mp4"}
	if err := clips.CreateClip(ctx, clip); err != nil {
		t.Fatalf("create clip: %v", err)
	}
	if err := comments.CreateComment(ctx, &models.Comment{UserID: author.ID, ClipID: clip.ID, Body: "gone soon"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := clips.DeleteClip(ctx, clip.ID); err != nil {
		t.Fatalf("delete clip: %v", err)
	}

	var count int64
	if err := db.Model(&models.Comment{}).Where("clip_id = ?", clip.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cascade to remove comments, found %d", count)
	}
}

func TestCommentRepository_CascadeOnUserDelete(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	clips := repositories.NewPostgresClipRepository(db)
	comments := repositories.NewPostgresCommentRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "owner", "owner@b.com")
	commenter := createUser(t, users, "commenter", "commenter@b.com")
	clip := &models.Clip{UserID: owner.ID, Title: "stays", VideoURL: "https://cdn.test/v.mp4"}
	if err := clips.CreateClip(ctx, clip); err != nil {
		t.Fatalf("create clip: %v", err)
	}
	if err := comments.CreateComment(ctx, &models.Comment{UserID: commenter.ID, ClipID: clip.ID, Body: "bye"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := users.DeleteUser(ctx, commenter.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var count int64
	if err := db.Model(&models.Comment{}).Where("user_id = ?", commenter.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cascade to remove comments, found %d", count)
	}
	// The clip by the other user survives
	if _, err := clips.GetClipByID(ctx, clip.ID); err != nil {
		t.Fatalf("clip should survive: %v", err)
	}
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewPostgresUserRepository(db)
	sessions := repositories.NewPostgresSessionRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "ab", "a@b.com")
	if err := sessions.CreateSession(ctx, &models.Session{Token: "tok", UserID: user.ID}); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := sessions.GetSessionByToken(ctx, "tok")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.User.Username != "ab" {
		t.Fatalf("expected preloaded user, got %+v", got.User)
	}

	if err := sessions.DeleteSessionByToken(ctx, "tok"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	// Deleting again is a no-op
	if err := sessions.DeleteSessionByToken(ctx, "tok"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if _, err := sessions.GetSessionByToken(ctx, "tok"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

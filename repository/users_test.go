package repository

import (
	"context"
	"testing"
	"time"

	"gonotes/apperr"
	"gonotes/model"

	"github.com/google/uuid"
)

func testUser(username string) *model.User {
	return &model.User{
		UserID:    uuid.New().String(),
		Username:  username,
		Password:  "c2FsdA$aGFzaA",
		CreatedAt: time.Now(),
	}
}

func TestAddUserAndFind(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetUserRepo(client)
	ctx := context.Background()

	user := testUser("alice")
	if err := repo.AddUser(ctx, user); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	found, err := repo.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindUserByUsername failed: %v", err)
	}
	if found == nil || found.UserID != user.UserID {
		t.Errorf("expected to find alice with id %s, got %+v", user.UserID, found)
	}

	byID, err := repo.FindUserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if byID == nil || byID.Username != "alice" {
		t.Errorf("expected alice by id, got %+v", byID)
	}
}

func TestAddUserDuplicateUsername(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetUserRepo(client)
	ctx := context.Background()

	if err := repo.AddUser(ctx, testUser("alice")); err != nil {
		t.Fatalf("first AddUser failed: %v", err)
	}

	// The unique index rejects a second alice even when the usecase
	// pre-check is bypassed, which covers racing signups.
	err := repo.AddUser(ctx, testUser("alice"))
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("duplicate username should conflict, got %v", err)
	}
}

func TestFindUserAbsent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetUserRepo(client)
	ctx := context.Background()

	found, err := repo.FindUserByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("FindUserByUsername failed: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for absent user, got %+v", found)
	}

	byID, err := repo.FindUserByID(ctx, uuid.New().String())
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if byID != nil {
		t.Errorf("expected nil for absent id, got %+v", byID)
	}
}

func TestFindUserCaseSensitive(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetUserRepo(client)
	ctx := context.Background()

	if err := repo.AddUser(ctx, testUser("alice")); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	found, err := repo.FindUserByUsername(ctx, "Alice")
	if err != nil {
		t.Fatalf("FindUserByUsername failed: %v", err)
	}
	if found != nil {
		t.Errorf("lookup is exact-match; Alice should not find alice, got %+v", found)
	}
}

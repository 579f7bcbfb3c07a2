package usecase

import (
	"context"
	"testing"

	"gonotes/apperr"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := &UserService{UsersRepo: newFakeUserRepo()}
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := svc.Authenticate(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %q", user.Username)
	}
	if user.UserID == "" {
		t.Error("authenticated user should carry its id")
	}
	if user.Password == "pw1" {
		t.Error("stored password must be hashed")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := &UserService{UsersRepo: newFakeUserRepo()}
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := svc.Register(ctx, "alice", "other")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("duplicate signup should conflict, got %v", err)
	}
}

func TestRegisterCaseSensitiveUsernames(t *testing.T) {
	svc := &UserService{UsersRepo: newFakeUserRepo()}
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	// Uniqueness is exact-match; a different casing is a different name.
	if err := svc.Register(ctx, "Alice", "pw1"); err != nil {
		t.Errorf("differently-cased username should register, got %v", err)
	}
}

func TestAuthenticateFailureIsGeneric(t *testing.T) {
	svc := &UserService{UsersRepo: newFakeUserRepo()}
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, unknownUserErr := svc.Authenticate(ctx, "nobody", "pw1")
	_, wrongPasswordErr := svc.Authenticate(ctx, "alice", "wrong")

	for _, err := range []error{unknownUserErr, wrongPasswordErr} {
		if !apperr.IsKind(err, apperr.KindAuth) {
			t.Errorf("expected auth error, got %v", err)
		}
	}

	// The two failure modes must be indistinguishable so responses
	// cannot be used to enumerate usernames.
	if apperr.MessageOf(unknownUserErr) != apperr.MessageOf(wrongPasswordErr) {
		t.Errorf("failure messages differ: %q vs %q",
			apperr.MessageOf(unknownUserErr), apperr.MessageOf(wrongPasswordErr))
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := &UserService{UsersRepo: newFakeUserRepo()}
	ctx := context.Background()

	for _, tt := range []struct {
		name     string
		username string
		password string
	}{
		{"No Username", "", "pw1"},
		{"No Password", "alice", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.password)
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

package usecase

import (
	"context"
	"time"

	"gonotes/apperr"
	"gonotes/model"
	"gonotes/services"
	"gonotes/utils"

	"github.com/google/uuid"
)

// UserRepository is the slice of the credential store the user service
// needs. repository.UserRepo satisfies it; tests use in-memory fakes.
type UserRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByID(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UsersRepo UserRepository
}

// Register creates an account with a hashed password. Usernames are
// unique under exact, case-sensitive comparison; a taken username is a
// conflict. Only the argon2id digest is ever stored.
func (svc *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return apperr.New(apperr.KindValidation, "username and password are required")
	}

	existing, err := svc.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "signup")
		return apperr.New(apperr.KindConflict, "user already exists")
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		Username:  username,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return err
	}

	utils.TrackAuthAttempt("success", "signup")
	return nil
}

// Authenticate verifies a username/password pair and returns the
// account. An unknown username and a wrong password fail with the same
// generic error so responses cannot be used for username enumeration.
func (svc *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, apperr.New(apperr.KindAuth, "invalid credentials")
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "login")
		return nil, apperr.New(apperr.KindAuth, "invalid credentials")
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

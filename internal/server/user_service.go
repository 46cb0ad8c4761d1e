package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kcheesee/JApplication-Tracker/internal/config"
	"github.com/Kcheesee/JApplication-Tracker/internal/db"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// UserStore is the persistence surface the user service needs.
// *db.DB satisfies it; tests substitute a fake.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*db.UserRecord, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

// UserService provides business logic for account registration and login.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{store: store, passwordConfig: passwordConfig}
}

func toAPIUser(rec *db.UserRecord) *types.User {
	if rec == nil {
		return nil
	}
	return &types.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt,
	}
}

// Register creates a new account with a hashed password.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	rec, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}
	return toAPIUser(rec), nil
}

// Login authenticates a user. Unknown email and wrong password return the
// same generic error.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	rec, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if rec == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, rec.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return toAPIUser(rec), nil
}

package service

import (
	"context"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrEmailTaken     = errors.New("user already registered")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration, login, and profile lookup.
type AuthService struct {
	users  UserStore
	tokens *crypto.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *crypto.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user and returns an auth token for the new identity.
// The password is hashed here, as an explicit step of registration; the
// storage layer only ever sees the digest.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.FullName.FirstName == "" || req.FullName.LastName == "" || req.Email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrFieldsRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		FirstName:    req.FullName.FirstName,
		LastName:     req.FullName.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Message: "user registered successfully",
		Token:   token,
		User:    userResponse(user),
	}, nil
}

// Login verifies the credentials and returns a fresh auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    userResponse(user),
	}, nil
}

// Profile returns the user summary for an authenticated identity.
// ErrUserNotFound means the token's subject no longer resolves to a row.
func (s *AuthService) Profile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return userResponse(user), nil
}

func userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID: user.ID,
		FullName: model.FullName{
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Email: user.Email,
	}
}

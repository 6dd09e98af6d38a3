package service

import (
	"context"
	"errors"
	"fmt"

	"jokepatra/internal/auth"
	"jokepatra/internal/models"
	"jokepatra/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	VerifyToken(tokenString string) (*auth.Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login answers ErrInvalidCredentials for an unknown email, a wrong password
// and a non-admin account alike.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.Password) || !user.Role.Valid() {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

func (s *authService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return s.tokens.VerifyToken(tokenString)
}

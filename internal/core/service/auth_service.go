package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campuslife/activity-system/internal/core/domain"
	"github.com/campuslife/activity-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	codec  *TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Register creates a new identity. All three fields are required and the
// role must be one of the recognised variants.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, domain.ErrValidation
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: username,
		Password: password,
		Role:     parsed,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed token carrying the
// identity claims.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

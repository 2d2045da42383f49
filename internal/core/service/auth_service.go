package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

// AuthService implements login and token refresh over the read-only user store.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *TokenManager
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies credentials and issues a token. Unknown username and wrong
// password return the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.IdentityOf(user))
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return token, user, nil
}

// Refresh re-issues a token from an identity that already passed verification.
// Credentials are not re-checked.
func (s *AuthService) Refresh(identity domain.Identity) (string, error) {
	return s.tokens.Issue(identity)
}

// ExpiresIn reports the token lifetime as sent back in login/refresh payloads.
func (s *AuthService) ExpiresIn() string {
	return s.tokens.TTL().String()
}

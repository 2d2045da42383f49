package ports

import (
	"context"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// matched user. Unknown username and wrong password both come back as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// Refresh re-issues a token for an already verified identity.
	Refresh(identity domain.Identity) (string, error)

	// ExpiresIn reports the configured token lifetime, for login/refresh
	// response payloads.
	ExpiresIn() string
}

package ports

import "github.com/mna-portal/societa-api/internal/core/domain"

// TokenVerifier checks a bearer token's signature and expiry and decodes the
// identity it asserts. Implementations must be side-effect free.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

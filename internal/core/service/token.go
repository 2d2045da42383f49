package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// identityClaims is the wire shape of the bearer token payload.
type identityClaims struct {
	UserID    int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	SocietaID *int64 `json:"societaId,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the HS256 bearer tokens used as identity
// assertions. Tokens are stateless: expiry is the only invalidation mechanism.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager fails when no signing secret is configured; callers treat
// that as a fatal startup condition.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs an assertion for the given identity, valid for the configured
// lifetime from now.
func (m *TokenManager) Issue(ident domain.Identity) (string, error) {
	now := time.Now()
	claims := identityClaims{
		UserID:    ident.ID,
		Username:  ident.Username,
		Role:      ident.Role,
		SocietaID: ident.SocietaID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify decodes the identity asserted by token. Any failure — bad signature,
// wrong algorithm, expiry — collapses to domain.ErrInvalidToken.
func (m *TokenManager) Verify(token string) (*domain.Identity, error) {
	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{
		ID:        claims.UserID,
		Username:  claims.Username,
		Role:      claims.Role,
		SocietaID: claims.SocietaID,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

package ports

import (
	"context"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

// AuthRepository reads credential records. Users are provisioned out-of-band,
// so there is no create/update surface here.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

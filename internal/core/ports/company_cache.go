package ports

import (
	"context"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

// CompanyCache caches the censored listing served to anonymous callers.
// GetPublicList returns (nil, nil) on a miss. Implementations may fail; the
// caller degrades to the store.
type CompanyCache interface {
	GetPublicList(ctx context.Context) ([]domain.CensoredCompany, error)
	SetPublicList(ctx context.Context, list []domain.CensoredCompany) error
	Invalidate(ctx context.Context) error
}

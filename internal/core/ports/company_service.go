package ports

import (
	"context"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

// CompanyService orchestrates store access and the visibility policy.
// ident is nil for anonymous callers on the read paths.
type CompanyService interface {
	Get(ctx context.Context, id int64, ident *domain.Identity) (domain.CompanyView, error)
	List(ctx context.Context, ident *domain.Identity) (domain.CompanyListView, error)
	Create(ctx context.Context, in CreateCompanyInput) (*domain.Company, error)
	Update(ctx context.Context, id int64, in UpdateCompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

package ports

import (
	"context"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

// CreateCompanyInput carries an already validated create payload.
type CreateCompanyInput struct {
	Nome        string
	Fatturato   float64
	Ebitda      float64
	Regione     string
	CodiceAteco string
	Settore     string
	Descrizione *string
}

// UpdateCompanyInput carries an already validated partial update. Nil fields
// are left untouched.
type UpdateCompanyInput struct {
	Nome        *string
	Fatturato   *float64
	Ebitda      *float64
	Regione     *string
	CodiceAteco *string
	Settore     *string
	Descrizione *string
}

// Empty reports whether no recognized field is present.
func (in UpdateCompanyInput) Empty() bool {
	return in.Nome == nil && in.Fatturato == nil && in.Ebitda == nil &&
		in.Regione == nil && in.CodiceAteco == nil && in.Settore == nil &&
		in.Descrizione == nil
}

// CompanyRepository persists società records. Every operation is a single
// parameterized statement; uniqueness on nome is enforced by the store and
// surfaced as domain.ErrDuplicateName.
type CompanyRepository interface {
	Create(ctx context.Context, in CreateCompanyInput) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, id int64, in UpdateCompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

// CompanyService orchestrates the società store and the visibility policy.
type CompanyService struct {
	repo   ports.CompanyRepository
	cache  ports.CompanyCache // nil when no cache is configured
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, cache ports.CompanyCache, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, cache: cache, logger: logger}
}

// Get fetches one company and renders it according to the caller's identity.
func (s *CompanyService) Get(ctx context.Context, id int64, ident *domain.Identity) (domain.CompanyView, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.CompanyView{}, err
	}
	return domain.RenderCompany(*company, ident), nil
}

// List fetches all companies and renders them according to the caller's
// identity. The censored anonymous listing is served from the cache when one
// is configured; cache failures fall back to the store.
func (s *CompanyService) List(ctx context.Context, ident *domain.Identity) (domain.CompanyListView, error) {
	if ident == nil && s.cache != nil {
		cached, err := s.cache.GetPublicList(ctx)
		if err != nil {
			s.logger.Debug().Err(err).Msg("public list cache read failed")
		} else if cached != nil {
			return domain.CompanyListView{Message: domain.MsgPublicData, Censored: cached}, nil
		}
	}

	companies, err := s.repo.List(ctx)
	if err != nil {
		return domain.CompanyListView{}, err
	}

	view, err := domain.RenderCompanyList(companies, ident)
	if err != nil {
		return domain.CompanyListView{}, err
	}

	if ident == nil && s.cache != nil {
		if err := s.cache.SetPublicList(ctx, view.Censored); err != nil {
			s.logger.Debug().Err(err).Msg("public list cache write failed")
		}
	}
	return view, nil
}

// Create inserts a new company. Duplicate nome surfaces from the store's
// uniqueness constraint as domain.ErrDuplicateName; there is no pre-check.
func (s *CompanyService) Create(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
	company, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	s.logger.Info().Int64("id", company.ID).Str("nome", company.Nome).Msg("company created")
	return company, nil
}

// Update applies a partial update as a single statement and returns the
// resulting row.
func (s *CompanyService) Update(ctx context.Context, id int64, in ports.UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	s.logger.Info().Int64("id", id).Msg("company updated")
	return company, nil
}

// Delete removes a company.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.logger.Info().Int64("id", id).Msg("company deleted")
	return nil
}

func (s *CompanyService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("public list cache invalidation failed")
	}
}

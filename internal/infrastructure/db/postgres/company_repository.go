package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

const uniqueViolation = "23505"

const companyColumns = "id, nome, fatturato, ebitda, regione, codice_ateco, settore, descrizione, created_at, updated_at"

// CompanyRepository persists società records in the societa table. Every
// operation is a single parameterized statement; there are no transactions.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) Create(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
	query := `
		INSERT INTO societa (nome, fatturato, ebitda, regione, codice_ateco, settore, descrizione)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + companyColumns

	row := r.pool.QueryRow(ctx, query,
		strings.TrimSpace(in.Nome),
		in.Fatturato,
		in.Ebitda,
		strings.TrimSpace(in.Regione),
		strings.TrimSpace(in.CodiceAteco),
		strings.TrimSpace(in.Settore),
		in.Descrizione,
	)

	company, err := scanCompany(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("inserting company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM societa WHERE id = $1`

	company, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("querying company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM societa ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company row: %w", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}
	return companies, nil
}

// Update builds a single UPDATE statement covering exactly the present fields
// and returns the updated row. The caller guarantees at least one field is set.
func (r *CompanyRepository) Update(ctx context.Context, id int64, in ports.UpdateCompanyInput) (*domain.Company, error) {
	set := make([]string, 0, 8)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Nome != nil {
		add("nome", strings.TrimSpace(*in.Nome))
	}
	if in.Fatturato != nil {
		add("fatturato", *in.Fatturato)
	}
	if in.Ebitda != nil {
		add("ebitda", *in.Ebitda)
	}
	if in.Regione != nil {
		add("regione", strings.TrimSpace(*in.Regione))
	}
	if in.CodiceAteco != nil {
		add("codice_ateco", strings.TrimSpace(*in.CodiceAteco))
	}
	if in.Settore != nil {
		add("settore", strings.TrimSpace(*in.Settore))
	}
	if in.Descrizione != nil {
		add("descrizione", strings.TrimSpace(*in.Descrizione))
	}
	set = append(set, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE societa SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), companyColumns)

	company, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("updating company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM societa WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Nome, &c.Fatturato, &c.Ebitda,
		&c.Regione, &c.CodiceAteco, &c.Settore, &c.Descrizione,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

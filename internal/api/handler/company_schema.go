package handler

import (
	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createCompanyRequest covers POST /api/societa. fatturato and ebitda are
// pointers so that an explicit zero passes the required check.
type createCompanyRequest struct {
	Nome        string   `json:"nome"         validate:"required,min=2,max=100"`
	Fatturato   *float64 `json:"fatturato"    validate:"required,gte=0"`
	Ebitda      *float64 `json:"ebitda"       validate:"required,gte=0"`
	Regione     string   `json:"regione"      validate:"required,min=2,max=50"`
	CodiceAteco string   `json:"codice_ateco" validate:"required,ateco"`
	Settore     string   `json:"settore"      validate:"required,min=2,max=100"`
	Descrizione *string  `json:"descrizione"  validate:"omitempty,min=10,max=1000"`
}

func (r createCompanyRequest) toInput() ports.CreateCompanyInput {
	descrizione := r.Descrizione
	if descrizione != nil && *descrizione == "" {
		descrizione = nil
	}
	return ports.CreateCompanyInput{
		Nome:        r.Nome,
		Fatturato:   *r.Fatturato,
		Ebitda:      *r.Ebitda,
		Regione:     r.Regione,
		CodiceAteco: r.CodiceAteco,
		Settore:     r.Settore,
		Descrizione: descrizione,
	}
}

// updateCompanyRequest covers PATCH /api/societa/:id. Every field is optional;
// present fields follow the same per-field rules as create (omitnil, not
// omitempty, so a present-but-empty string still fails its length bound).
type updateCompanyRequest struct {
	Nome        *string  `json:"nome"         validate:"omitnil,min=2,max=100"`
	Fatturato   *float64 `json:"fatturato"    validate:"omitnil,gte=0"`
	Ebitda      *float64 `json:"ebitda"       validate:"omitnil,gte=0"`
	Regione     *string  `json:"regione"      validate:"omitnil,min=2,max=50"`
	CodiceAteco *string  `json:"codice_ateco" validate:"omitnil,ateco"`
	Settore     *string  `json:"settore"      validate:"omitnil,min=2,max=100"`
	Descrizione *string  `json:"descrizione"  validate:"omitnil,min=10,max=1000"`
}

func (r updateCompanyRequest) toInput() ports.UpdateCompanyInput {
	return ports.UpdateCompanyInput{
		Nome:        r.Nome,
		Fatturato:   r.Fatturato,
		Ebitda:      r.Ebitda,
		Regione:     r.Regione,
		CodiceAteco: r.CodiceAteco,
		Settore:     r.Settore,
		Descrizione: r.Descrizione,
	}
}

// --- Response types ---

// companyViewResponse wraps policy-rendered reads: data is either the full
// record or its censored form, message says which view the caller got.
type companyViewResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type companyMutationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *domain.Company `json:"data"`
}

type companyDeleteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID int64  `json:"deletedId"`
}

package domain

import "time"

// DescrizionePlaceholder replaces a missing descrizione in censored views.
const DescrizionePlaceholder = "No description available"

// Company is a società record as persisted in the societa table.
// Invariant maintained by validation: Ebitda <= Fatturato.
type Company struct {
	ID          int64     `json:"id"`
	Nome        string    `json:"nome"`
	Fatturato   float64   `json:"fatturato"`
	Ebitda      float64   `json:"ebitda"`
	Regione     string    `json:"regione"`
	CodiceAteco string    `json:"codice_ateco"`
	Settore     string    `json:"settore"`
	Descrizione *string   `json:"descrizione"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CensoredCompany is the public representation of a company. Nome, fatturato
// and ebitda are never part of it; the two underscore fields mark the record
// as partial so clients can tell the difference.
type CensoredCompany struct {
	ID          int64  `json:"id"`
	Regione     string `json:"regione"`
	CodiceAteco string `json:"codice_ateco"`
	Settore     string `json:"settore"`
	Descrizione string `json:"descrizione"`
	Censored    bool   `json:"_censored"`
	Message     string `json:"_message"`
}

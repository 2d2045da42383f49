package handler

import (
	"testing"
)

func ptrString(s string) *string { return &s }

func ptrFloat(f float64) *float64 { return &f }

func validCreateRequest() createCompanyRequest {
	return createCompanyRequest{
		Nome:        "Acme SpA",
		Fatturato:   ptrFloat(1_000_000),
		Ebitda:      ptrFloat(250_000),
		Regione:     "Lombardia",
		CodiceAteco: "62.01.00",
		Settore:     "Software",
	}
}

func TestValidator_CreateValid(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(validCreateRequest()); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidator_CreateZeroFinancialsValid(t *testing.T) {
	v := NewValidator()
	req := validCreateRequest()
	req.Fatturato = ptrFloat(0)
	req.Ebitda = ptrFloat(0)
	if err := v.Validate(req); err != nil {
		t.Fatalf("explicit zero must pass the required check, got %v", err)
	}
}

func TestValidator_CreateFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*createCompanyRequest)
		wantMsg string
	}{
		{
			name:    "missing nome",
			mutate:  func(r *createCompanyRequest) { r.Nome = "" },
			wantMsg: "nome is required",
		},
		{
			name:    "nome too short",
			mutate:  func(r *createCompanyRequest) { r.Nome = "A" },
			wantMsg: "nome must be at least 2 characters",
		},
		{
			name:    "missing fatturato",
			mutate:  func(r *createCompanyRequest) { r.Fatturato = nil },
			wantMsg: "fatturato is required",
		},
		{
			name:    "negative fatturato",
			mutate:  func(r *createCompanyRequest) { r.Fatturato = ptrFloat(-1) },
			wantMsg: "fatturato must be zero or positive",
		},
		{
			name:    "negative ebitda",
			mutate:  func(r *createCompanyRequest) { r.Ebitda = ptrFloat(-5) },
			wantMsg: "ebitda must be zero or positive",
		},
		{
			name:    "regione too long",
			mutate:  func(r *createCompanyRequest) { r.Regione = string(make([]byte, 51)) },
			wantMsg: "regione cannot exceed 50 characters",
		},
		{
			name:    "descrizione too short",
			mutate:  func(r *createCompanyRequest) { r.Descrizione = ptrString("short") },
			wantMsg: "descrizione must be at least 10 characters",
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := v.Validate(req)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidator_AtecoFormat(t *testing.T) {
	v := NewValidator()

	req := validCreateRequest()
	req.CodiceAteco = "62.01.00"
	if err := v.Validate(req); err != nil {
		t.Fatalf("62.01.00 must be accepted: %v", err)
	}

	for _, bad := range []string{"6201.00", "62-01-00", "620100", "62.01", "62.01.0a", "162.01.00"} {
		req := validCreateRequest()
		req.CodiceAteco = bad
		err := v.Validate(req)
		if err == nil {
			t.Fatalf("%q must be rejected", bad)
		}
		if err.Error() != "codice_ateco has an invalid format (expected: 62.01.00)" {
			t.Fatalf("unexpected message for %q: %q", bad, err.Error())
		}
	}
}

// Fail-fast: with several invalid fields only the first (in field order) is reported.
func TestValidator_FailFast(t *testing.T) {
	v := NewValidator()
	req := validCreateRequest()
	req.Nome = ""
	req.CodiceAteco = "bad"
	err := v.Validate(req)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "nome is required" {
		t.Fatalf("expected first error only, got %q", err.Error())
	}
}

func TestValidator_UpdatePresentFieldsChecked(t *testing.T) {
	v := NewValidator()

	// All-nil update passes validation; the missing-fields case is rejected
	// earlier by the handler.
	if err := v.Validate(updateCompanyRequest{}); err != nil {
		t.Fatalf("empty update must pass struct validation: %v", err)
	}

	if err := v.Validate(updateCompanyRequest{Nome: ptrString("X")}); err == nil {
		t.Fatalf("present nome must honour its length bound")
	}

	if err := v.Validate(updateCompanyRequest{Ebitda: ptrFloat(-1)}); err == nil {
		t.Fatalf("present ebitda must be non-negative")
	}

	if err := v.Validate(updateCompanyRequest{CodiceAteco: ptrString("620100")}); err == nil {
		t.Fatalf("present codice_ateco must match the format")
	}

	if err := v.Validate(updateCompanyRequest{Fatturato: ptrFloat(0)}); err != nil {
		t.Fatalf("zero fatturato is valid on update: %v", err)
	}
}

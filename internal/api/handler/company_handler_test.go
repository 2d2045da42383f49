package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mna-portal/societa-api/internal/api/middleware"
	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

type stubCompanyService struct {
	getFn    func(ctx context.Context, id int64, ident *domain.Identity) (domain.CompanyView, error)
	listFn   func(ctx context.Context, ident *domain.Identity) (domain.CompanyListView, error)
	createFn func(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateCompanyInput) (*domain.Company, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCompanyService) Get(ctx context.Context, id int64, ident *domain.Identity) (domain.CompanyView, error) {
	return s.getFn(ctx, id, ident)
}

func (s *stubCompanyService) List(ctx context.Context, ident *domain.Identity) (domain.CompanyListView, error) {
	return s.listFn(ctx, ident)
}

func (s *stubCompanyService) Create(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
	return s.createFn(ctx, in)
}

func (s *stubCompanyService) Update(ctx context.Context, id int64, in ports.UpdateCompanyInput) (*domain.Company, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCompanyService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func testCompany(id int64) domain.Company {
	return domain.Company{
		ID:          id,
		Nome:        "Acme SpA",
		Fatturato:   1_000_000,
		Ebitda:      250_000,
		Regione:     "Lombardia",
		CodiceAteco: "62.01.00",
		Settore:     "Software",
	}
}

func TestCompanyHandler_Get_AnonymousCensored(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{
		getFn: func(_ context.Context, id int64, ident *domain.Identity) (domain.CompanyView, error) {
			if id != 5 || ident != nil {
				t.Fatalf("unexpected args: %d %+v", id, ident)
			}
			return domain.RenderCompany(testCompany(5), nil), nil
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/societa/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != domain.MsgPublicData {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if _, leaked := resp.Data["fatturato"]; leaked {
		t.Fatalf("fatturato leaked to anonymous caller")
	}
	if _, leaked := resp.Data["ebitda"]; leaked {
		t.Fatalf("ebitda leaked to anonymous caller")
	}
	if resp.Data["_censored"] != true {
		t.Fatalf("censorship marker missing: %v", resp.Data)
	}
}

func TestCompanyHandler_Get_OwnerFull(t *testing.T) {
	e := newEcho()
	societaID := int64(5)
	buyer := &domain.Identity{ID: 2, Username: "mario", Role: domain.RoleBuyer, SocietaID: &societaID}
	stub := &stubCompanyService{
		getFn: func(_ context.Context, id int64, ident *domain.Identity) (domain.CompanyView, error) {
			return domain.RenderCompany(testCompany(id), ident), nil
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/societa/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, buyer)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != domain.MsgBuyerOwnView {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Data["fatturato"] != float64(1_000_000) {
		t.Fatalf("full view missing fatturato: %v", resp.Data)
	}
}

func TestCompanyHandler_Get_InvalidID(t *testing.T) {
	e := newEcho()
	h := NewCompanyHandler(&stubCompanyService{})

	for _, bad := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/societa/"+bad, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(bad)

		err := h.Get(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for id %q, got %v", bad, err)
		}
	}
}

func TestCompanyHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{
		getFn: func(_ context.Context, _ int64, _ *domain.Identity) (domain.CompanyView, error) {
			return domain.CompanyView{}, domain.ErrCompanyNotFound
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/societa/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound to propagate, got %v", err)
	}
}

func TestCompanyHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{
		listFn: func(_ context.Context, ident *domain.Identity) (domain.CompanyListView, error) {
			return domain.RenderCompanyList([]domain.Company{testCompany(1), testCompany(2)}, ident)
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/societa", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Data))
	}
	for _, record := range resp.Data {
		if _, leaked := record["fatturato"]; leaked {
			t.Fatalf("fatturato leaked in anonymous listing")
		}
	}
}

func TestCompanyHandler_Create(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{
		createFn: func(_ context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
			if in.Nome != "Acme SpA" || in.Fatturato != 1000000 || in.Ebitda != 250000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			company := testCompany(7)
			return &company, nil
		},
	}
	h := NewCompanyHandler(stub)

	body := `{"nome":"Acme SpA","fatturato":1000000,"ebitda":250000,"regione":"Lombardia","codice_ateco":"62.01.00","settore":"Software"}`
	req := jsonRequest(http.MethodPost, "/api/societa", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCompanyHandler_Create_EbitdaAboveFatturato(t *testing.T) {
	e := newEcho()
	h := NewCompanyHandler(&stubCompanyService{
		createFn: func(_ context.Context, _ ports.CreateCompanyInput) (*domain.Company, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	body := `{"nome":"Acme SpA","fatturato":100,"ebitda":200,"regione":"Lombardia","codice_ateco":"62.01.00","settore":"Software"}`
	req := jsonRequest(http.MethodPost, "/api/societa", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "ebitda cannot exceed fatturato" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestCompanyHandler_Create_DuplicateName(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{
		createFn: func(_ context.Context, _ ports.CreateCompanyInput) (*domain.Company, error) {
			return nil, domain.ErrDuplicateName
		},
	}
	h := NewCompanyHandler(stub)

	body := `{"nome":"Acme SpA","fatturato":100,"ebitda":50,"regione":"Lombardia","codice_ateco":"62.01.00","settore":"Software"}`
	req := jsonRequest(http.MethodPost, "/api/societa", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName to propagate, got %v", err)
	}
}

func TestCompanyHandler_Update_EmptyBody(t *testing.T) {
	e := newEcho()
	h := NewCompanyHandler(&stubCompanyService{
		updateFn: func(_ context.Context, _ int64, _ ports.UpdateCompanyInput) (*domain.Company, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	req := jsonRequest(http.MethodPatch, "/api/societa/5", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "at least one field to update" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestCompanyHandler_Update_CrossFieldOnlyWhenBothPresent(t *testing.T) {
	e := newEcho()

	// ebitda alone, however large, is not cross-checked against stored values.
	called := false
	h := NewCompanyHandler(&stubCompanyService{
		updateFn: func(_ context.Context, id int64, in ports.UpdateCompanyInput) (*domain.Company, error) {
			called = true
			if in.Ebitda == nil || *in.Ebitda != 900 {
				t.Fatalf("unexpected input: %+v", in)
			}
			company := testCompany(id)
			return &company, nil
		},
	})

	req := jsonRequest(http.MethodPatch, "/api/societa/5", `{"ebitda":900}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}

	// Both present and inconsistent → rejected before the service.
	h = NewCompanyHandler(&stubCompanyService{
		updateFn: func(_ context.Context, _ int64, _ ports.UpdateCompanyInput) (*domain.Company, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	req = jsonRequest(http.MethodPatch, "/api/societa/5", `{"fatturato":100,"ebitda":200}`)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCompanyHandler_Delete(t *testing.T) {
	e := newEcho()
	stub := &stubCompanyService{
		deleteFn: func(_ context.Context, id int64) error {
			if id != 5 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/societa/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["deletedId"] != float64(5) || resp["success"] != true {
		t.Fatalf("unexpected response: %v", resp)
	}
}

package domain

// Messages attached to rendered company views. The single-record and list
// variants mirror what the frontend displays next to the data.
const (
	MsgPublicData    = "public data, login for full details"
	MsgAdminView     = "admin view"
	MsgBuyerOwnView  = "buyer view - your company"
	MsgBuyerCensored = "public data censored"

	MsgAdminList = "admin view - all companies"
	MsgBuyerList = "buyer view - your company only"

	censoredDetail = "login for full details (nome, fatturato, ebitda)"
)

// CompanyView is the outcome of the visibility decision for one record.
// Exactly one of Full or Censored is set.
type CompanyView struct {
	Message  string
	Full     *Company
	Censored *CensoredCompany
}

// Data returns the payload to serialise, whichever side is populated.
func (v CompanyView) Data() any {
	if v.Full != nil {
		return v.Full
	}
	return v.Censored
}

// CompanyListView is the outcome of the visibility decision for a listing.
// Either Full or Censored is populated, never both.
type CompanyListView struct {
	Message  string
	Full     []Company
	Censored []CensoredCompany
}

func (v CompanyListView) Data() any {
	if v.Censored != nil {
		return v.Censored
	}
	if v.Full == nil {
		return []Company{}
	}
	return v.Full
}

// Censor strips a company down to its public fields. Pure and total: it never
// consults the caller identity, which must already have been judged
// insufficient for a full view.
func Censor(c Company) CensoredCompany {
	descrizione := DescrizionePlaceholder
	if c.Descrizione != nil && *c.Descrizione != "" {
		descrizione = *c.Descrizione
	}
	return CensoredCompany{
		ID:          c.ID,
		Regione:     c.Regione,
		CodiceAteco: c.CodiceAteco,
		Settore:     c.Settore,
		Descrizione: descrizione,
		Censored:    true,
		Message:     censoredDetail,
	}
}

// RenderCompany decides how a single record appears to the caller:
// admins and the owning buyer get the full record, everyone else a censored
// one. ident is nil for anonymous callers.
func RenderCompany(c Company, ident *Identity) CompanyView {
	if ident == nil {
		censored := Censor(c)
		return CompanyView{Message: MsgPublicData, Censored: &censored}
	}

	switch ident.Role {
	case RoleAdmin:
		return CompanyView{Message: MsgAdminView, Full: &c}
	case RoleBuyer:
		if ident.Owns(c.ID) {
			return CompanyView{Message: MsgBuyerOwnView, Full: &c}
		}
	}

	censored := Censor(c)
	return CompanyView{Message: MsgBuyerCensored, Censored: &censored}
}

// RenderCompanyList decides how a listing appears to the caller. Anonymous
// callers get every record censored, admins everything in full, buyers only
// the record they own (zero or one) — other companies are withheld entirely,
// not censored. A role outside the known enum rejects the whole request.
func RenderCompanyList(companies []Company, ident *Identity) (CompanyListView, error) {
	if ident == nil {
		return CompanyListView{Message: MsgPublicData, Censored: CensorAll(companies)}, nil
	}

	switch ident.Role {
	case RoleAdmin:
		if companies == nil {
			companies = []Company{}
		}
		return CompanyListView{Message: MsgAdminList, Full: companies}, nil
	case RoleBuyer:
		own := make([]Company, 0, 1)
		for _, c := range companies {
			if ident.Owns(c.ID) {
				own = append(own, c)
			}
		}
		return CompanyListView{Message: MsgBuyerList, Full: own}, nil
	}

	// Defensive: the token manager only ever issues the two known roles.
	return CompanyListView{}, ErrUnknownRole
}

// CensorAll censors every record in the slice. Always returns a non-nil slice.
func CensorAll(companies []Company) []CensoredCompany {
	censored := make([]CensoredCompany, 0, len(companies))
	for _, c := range companies {
		censored = append(censored, Censor(c))
	}
	return censored
}

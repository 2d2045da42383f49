package domain

const (
	RoleAdmin = "admin"
	RoleBuyer = "buyer"
)

// User models an account stored in the users table. Accounts are provisioned
// out-of-band; this API only reads them during login.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	SocietaID    *int64 `json:"societaId,omitempty"`
}

// Identity is the decoded content of a verified bearer token. A nil *Identity
// means the caller is anonymous.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	SocietaID *int64 `json:"societaId,omitempty"`
}

// IdentityOf derives the token identity for a user.
func IdentityOf(u *User) Identity {
	return Identity{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		SocietaID: u.SocietaID,
	}
}

// Owns reports whether the identity's societaId designates the given company.
func (i *Identity) Owns(companyID int64) bool {
	return i != nil && i.SocietaID != nil && *i.SocietaID == companyID
}

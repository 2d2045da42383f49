package service

import (
	"testing"
	"time"

	"github.com/mna-portal/societa-api/internal/core/domain"
)

func ptrInt64(v int64) *int64 { return &v }

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm, err := NewTokenManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	ident := domain.Identity{ID: 7, Username: "mario", Role: domain.RoleBuyer, SocietaID: ptrInt64(5)}
	token, err := tm.Issue(ident)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	decoded, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if decoded.ID != 7 || decoded.Username != "mario" || decoded.Role != domain.RoleBuyer {
		t.Fatalf("identity mismatch: %+v", decoded)
	}
	if decoded.SocietaID == nil || *decoded.SocietaID != 5 {
		t.Fatalf("societaId not preserved: %+v", decoded.SocietaID)
	}
}

func TestTokenManager_RoundTrip_NoSocietaID(t *testing.T) {
	tm, _ := NewTokenManager("secret", time.Hour)

	token, err := tm.Issue(domain.Identity{ID: 1, Username: "root", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	decoded, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if decoded.SocietaID != nil {
		t.Fatalf("expected nil societaId, got %v", *decoded.SocietaID)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm, _ := NewTokenManager("secret", -time.Minute)
	// Constructor clamps non-positive TTLs, so build an expired token directly.
	tm.ttl = -time.Minute

	token, err := tm.Issue(domain.Identity{ID: 1, Username: "root", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tm.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-a", time.Hour)
	verifier, _ := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(domain.Identity{ID: 1, Username: "root", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	tm, _ := NewTokenManager("secret", time.Hour)
	if _, err := tm.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm, err := NewTokenManager("secret", 0)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	if tm.TTL() != defaultTokenTTL {
		t.Fatalf("expected default TTL, got %v", tm.TTL())
	}
}

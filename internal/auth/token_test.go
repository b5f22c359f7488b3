package auth

import (
	"testing"

	"github.com/spec-kit/ticketapp/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)
	user := domain.SessionUser{ID: "1", Name: "Demo User", Email: "demo@ticketapp.com"}

	token, err := tm.Generate(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokensDifferPerIssue(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)
	user := domain.SessionUser{ID: "1", Email: "demo@ticketapp.com"}

	first, err := tm.Generate(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := tm.Generate(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first == second {
		t.Fatal("tokens for the same user must still be unique per issue")
	}
}

func TestParseRejectsForeignToken(t *testing.T) {
	issuer := NewTokenManager("secret-a", 5)
	verifier := NewTokenManager("secret-b", 5)

	token, err := issuer.Generate(domain.SessionUser{ID: "1"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

package token

import (
	"testing"
	"time"

	"github.com/inclufi/account-service/internal/domain"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	user := &domain.User{ID: 42, Email: "abebe@example.com"}

	signed, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := Parse(signed, "secret")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected uid 42, got %d", claims.UserID)
	}
	if claims.Email != "abebe@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
	if claims.Role != RoleUser {
		t.Fatalf("sign-in tokens must carry the user role, got %q", claims.Role)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	signed, err := issuer.Issue(&domain.User{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := Parse(signed, "other-secret"); err == nil {
		t.Fatal("expected a signature mismatch error")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("secret", -time.Minute)
	signed, err := issuer.Issue(&domain.User{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := Parse(signed, "secret"); err == nil {
		t.Fatal("expected an expiry error")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", "secret"); err == nil {
		t.Fatal("expected a parse error")
	}
}

package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", 0)

	tok, err := m.Sign("user-123", "auth")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "user-123")
	}
	if claims.Access != "auth" {
		t.Fatalf("access mismatch: got %q want %q", claims.Access, "auth")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", 0).Sign("u1", "auth")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", 0).Parse(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_MutatedToken(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", 0)
	tok, err := m.Sign("u2", "auth")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = m.Parse(tok + "x")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k", 0).Parse("not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	// A negative ttl stamps an expiry in the past, so the token is born dead.
	m := NewTokenManager("secret", -1*time.Second)
	tok, err := m.Sign("u3", "auth")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = m.Parse(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSign_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", 0)
	tok, err := m.Sign("u4", "auth")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("zero ttl must not stamp an expiry, got %v", claims.ExpiresAt)
	}
}

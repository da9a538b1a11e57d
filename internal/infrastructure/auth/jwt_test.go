package auth

import (
	"testing"
	"time"

	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

func TestIssueAndDecode_Success(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := issuer.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got != 42 {
		t.Fatalf("subject mismatch: got %d want 42", got)
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), -1*time.Second)

	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Decode(tok)
	if err != domerrors.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenIssuer([]byte("wrong-secret"), time.Hour).Decode(tok)
	if err != domerrors.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)
	_, err := issuer.Decode("not.a.jwt")
	if err != domerrors.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

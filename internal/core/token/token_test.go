package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

var testAccount = &domain.Account{
	ID:                "64f1b2c3d4e5f60718293a4b",
	Email:             "a@b.com",
	Username:          "ali",
	IsShariaCompliant: true,
	Status:            domain.StatusActive,
}

func TestManager_SessionRoundTrip(t *testing.T) {
	m := NewManager([]byte("session-key"), []byte("tx-key"))

	signed, err := m.IssueSession(testAccount)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	claims, err := m.VerifySession(signed)
	if err != nil {
		t.Fatalf("VerifySession: %v", err)
	}
	if claims.Subject != testAccount.ID {
		t.Fatalf("subject = %q, want %q", claims.Subject, testAccount.ID)
	}
	if claims.Username != "ali" {
		t.Fatalf("username = %q, want ali", claims.Username)
	}
	if !claims.IsShariaCompliant {
		t.Fatalf("compliance flag not preserved")
	}
	if claims.Issuer != Issuer {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
	if len(claims.Scope) != 1 || claims.Scope[0] != "user" {
		t.Fatalf("scope = %v", claims.Scope)
	}
	if len(claims.Audience) != 2 {
		t.Fatalf("audience = %v", claims.Audience)
	}
}

func TestManager_IssuedAtShiftedToPKT(t *testing.T) {
	m := NewManager([]byte("session-key"), []byte("tx-key"))

	signed, err := m.IssueSession(testAccount)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	claims, err := m.VerifySession(signed)
	if err != nil {
		t.Fatalf("VerifySession: %v", err)
	}

	offset := time.Until(claims.IssuedAt.Time)
	if offset < 4*time.Hour || offset > 6*time.Hour {
		t.Fatalf("iat offset = %v, want about +5h", offset)
	}
	if ttl := time.Until(claims.ExpiresAt.Time); ttl > 3*24*time.Hour || ttl < 3*24*time.Hour-time.Minute {
		t.Fatalf("expiry = %v from now, want about 3 days", ttl)
	}
}

func TestManager_ExpiredClassification(t *testing.T) {
	past := NewManager([]byte("session-key"), []byte("tx-key"))
	past.now = func() time.Time { return time.Now().Add(-4 * 24 * time.Hour) }

	signed, err := past.IssueSession(testAccount)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	m := NewManager([]byte("session-key"), []byte("tx-key"))
	if _, err := m.VerifySession(signed); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestManager_InvalidSignatureClassification(t *testing.T) {
	other := NewManager([]byte("different-key"), []byte("tx-key"))
	signed, err := other.IssueSession(testAccount)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	m := NewManager([]byte("session-key"), []byte("tx-key"))
	if _, err := m.VerifySession(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

// An expired token with a bad signature must report invalid, never expired.
func TestManager_ExpiredWithBadSignatureIsInvalid(t *testing.T) {
	other := NewManager([]byte("different-key"), []byte("tx-key"))
	other.now = func() time.Time { return time.Now().Add(-4 * 24 * time.Hour) }

	signed, err := other.IssueSession(testAccount)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	m := NewManager([]byte("session-key"), []byte("tx-key"))
	if _, err := m.VerifySession(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_TransactionTokenRejectedBySessionPath(t *testing.T) {
	m := NewManager([]byte("session-key"), []byte("tx-key"))

	signed, err := m.IssueTransaction(map[string]any{"amount": 5000, "symbol": "OGDC"})
	if err != nil {
		t.Fatalf("IssueTransaction: %v", err)
	}

	if _, err := m.VerifySession(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("transaction token accepted by session path: %v", err)
	}
}

func TestManager_NoneAlgorithmRejected(t *testing.T) {
	m := NewManager([]byte("session-key"), []byte("tx-key"))

	claims := SessionClaims{
		Username: "ali",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testAccount.ID,
			Issuer:    Issuer,
			Audience:  audience,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := m.VerifySession(unsigned); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}

func TestManager_GarbageRejected(t *testing.T) {
	m := NewManager([]byte("session-key"), []byte("tx-key"))
	if _, err := m.VerifySession("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

// Package token implements issuance and verification of the two signed
// credential types used by the platform: 3-day session tokens and 1-hour
// transaction tokens. The two are signed with distinct keys and are never
// interchangeable.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

const (
	// Issuer is the iss claim embedded in every session token.
	Issuer = "holdings-api"

	sessionTTL     = 3 * 24 * time.Hour
	transactionTTL = time.Hour

	// karachiOffset shifts issued-at into UTC+5 (PKT).
	karachiOffset = 5 * time.Hour
)

// audience lists the client types a session token is valid for.
var audience = jwt.ClaimStrings{"web", "mobile"}

// ErrSessionExpired means the signature was valid but the time window has
// elapsed. ErrTokenInvalid covers everything else (bad signature, structural
// damage, algorithm mismatch); no finer classification is exposed.
var ErrSessionExpired = errors.New("session expired")
var ErrTokenInvalid = errors.New("invalid token")

// SessionClaims is the signed payload of a session token.
type SessionClaims struct {
	Username          string   `json:"username"`
	IsShariaCompliant bool     `json:"isShariaCompliant"`
	Scope             []string `json:"scope"`
	jwt.RegisteredClaims
}

// Manager issues and verifies tokens with key material fixed at construction.
// It is safe for concurrent use; the keys are never mutated after start.
type Manager struct {
	sessionKey     []byte
	transactionKey []byte
	now            func() time.Time
}

// NewManager builds a Manager around the process-wide signing keys.
func NewManager(sessionKey, transactionKey []byte) *Manager {
	return &Manager{
		sessionKey:     sessionKey,
		transactionKey: transactionKey,
		now:            time.Now,
	}
}

// IssueSession signs session claims for an account. Issued-at is expressed in
// UTC+5; expiry is 3 days from real wall-clock time.
func (m *Manager) IssueSession(account *domain.Account) (string, error) {
	now := m.now().UTC()
	claims := SessionClaims{
		Username:          account.Username,
		IsShariaCompliant: account.IsShariaCompliant,
		Scope:             []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    Issuer,
			Audience:  audience,
			IssuedAt:  jwt.NewNumericDate(now.Add(karachiOffset)),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.sessionKey)
}

// IssueTransaction signs caller-supplied transaction details with the
// transaction key, stamping them with the compliance marker and a 1-hour
// expiry. Reserved claims in details are overwritten, never trusted.
func (m *Manager) IssueTransaction(details map[string]any) (string, error) {
	now := m.now().UTC()
	claims := jwt.MapClaims{}
	for k, v := range details {
		claims[k] = v
	}
	claims["timestamp"] = now.Format(time.RFC3339)
	claims["complianceChecked"] = true
	claims["exp"] = now.Add(transactionTTL).Unix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.transactionKey)
}

// VerifySession validates a raw session token: HS256 only, session key,
// issuer and audience pinned. The error is classified as ErrSessionExpired
// only when the signature checked out and the window elapsed; everything
// else collapses to ErrTokenInvalid.
func (m *Manager) VerifySession(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return m.sessionKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience("web"),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

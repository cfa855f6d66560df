package ports

import (
	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/token"
)

// TokenIssuer mints signed session and transaction tokens.
type TokenIssuer interface {
	IssueSession(account *domain.Account) (string, error)
	// IssueTransaction signs caller-supplied transaction details with the
	// transaction key; the result is never accepted by the session path.
	IssueTransaction(details map[string]any) (string, error)
}

// TokenVerifier validates a presented session token.
type TokenVerifier interface {
	// VerifySession returns the decoded claims, or one of
	// token.ErrSessionExpired / token.ErrTokenInvalid.
	VerifySession(raw string) (*token.SessionClaims, error)
}

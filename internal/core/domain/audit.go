package domain

import "time"

// Audit actions recorded for authentication activity.
const (
	AuditSignup      = "signup"
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
)

// AuditEvent records one authentication attempt for the compliance trail.
type AuditEvent struct {
	Email     string
	AccountID string
	Action    string
	RemoteIP  string
	Timestamp time.Time
}

package ports

import (
	"context"
	"time"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// AuditEventInput is the DTO passed from the auth flow to AuditService.
type AuditEventInput struct {
	Email     string
	AccountID string
	Action    string
	RemoteIP  string
	Timestamp time.Time
}

// AuditService persists authentication audit events.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository defines the interface for audit-trail persistence.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

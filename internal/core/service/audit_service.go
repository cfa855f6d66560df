package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation that persists
// authentication audit events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. A missing timestamp is stamped with
// the current time rather than rejected; the trail must never lose entries
// over clock plumbing.
func (s *auditService) Process(ctx context.Context, event ports.AuditEventInput) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	entry := &domain.AuditEvent{
		Email:     event.Email,
		AccountID: event.AccountID,
		Action:    event.Action,
		RemoteIP:  event.RemoteIP,
		Timestamp: ts,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}

	s.log.Debug().
		Str("action", entry.Action).
		Str("email", entry.Email).
		Msg("audit event recorded")
	return nil
}

package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/paktrade/holdings-api/internal/api/metrics"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

type stubAuditService struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
	done   chan struct{}
}

func (s *stubAuditService) Process(_ context.Context, event ports.AuditEventInput) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func TestDispatcher_ProcessesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &stubAuditService{done: make(chan struct{}, 1)}
	d := NewDispatcher(2, stub, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.AuditEventInput{Email: "a@b.com", Action: "login"})

	select {
	case <-stub.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("event was not processed")
	}

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if len(stub.events) != 1 || stub.events[0].Email != "a@b.com" {
		t.Fatalf("unexpected events: %+v", stub.events)
	}
}

func TestDispatcher_CountsDrops(t *testing.T) {
	// Workers are never started, so the single buffer fills and every event
	// past capacity takes the drop path.
	stub := &stubAuditService{done: make(chan struct{}, 1)}
	d := NewDispatcher(1, stub, zerolog.Nop())

	before := testutil.ToFloat64(metrics.AuditEventsDroppedTotal)

	const overflow = 5
	for i := 0; i < channelBuffer+overflow; i++ {
		d.Enqueue(ports.AuditEventInput{Email: "a@b.com", Action: "login"})
	}

	dropped := testutil.ToFloat64(metrics.AuditEventsDroppedTotal) - before
	if dropped != overflow {
		t.Fatalf("expected %d drops counted, got %v", overflow, dropped)
	}
}

func TestDispatcher_ShardIsStablePerEmail(t *testing.T) {
	d := NewDispatcher(4, &stubAuditService{}, zerolog.Nop())

	first := d.shardIndex("trader@psx.pk")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("trader@psx.pk"); got != first {
			t.Fatalf("shard changed between calls: %d vs %d", first, got)
		}
	}
}

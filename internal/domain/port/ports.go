package port

import (
	"context"
	"time"

	"github.com/propstead/financing-service/internal/domain/event"
	"github.com/propstead/financing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Collaborator ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LenderCatalogProvider supplies an immutable lender catalog snapshot per
// call. The engine never mutates the snapshot; providers must not alias their
// backing store into it.
type LenderCatalogProvider interface {
	Snapshot(ctx context.Context) (model.LenderCatalog, error)
}

// BorrowerProfileSource supplies borrower credit, income and debt figures.
// Identity and KYC concerns live behind this port, outside the engine.
type BorrowerProfileSource interface {
	ProfileByID(ctx context.Context, borrowerID string) (model.BorrowerProfile, error)
}

// AssessmentCache caches serialized credit assessments by borrower ID. A miss
// is reported via the bool, never as an error.
type AssessmentCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/propstead/financing-service/internal/domain/event"
	"github.com/propstead/financing-service/internal/domain/model"
)

// Function-field mocks keep each test's collaborator behavior next to the
// assertions it drives.

type mockCatalogProvider struct {
	snapshotFn func(ctx context.Context) (model.LenderCatalog, error)
}

func (m *mockCatalogProvider) Snapshot(ctx context.Context) (model.LenderCatalog, error) {
	return m.snapshotFn(ctx)
}

type mockProfileSource struct {
	profileByIDFn func(ctx context.Context, borrowerID string) (model.BorrowerProfile, error)
	calls         int
}

func (m *mockProfileSource) ProfileByID(ctx context.Context, borrowerID string) (model.BorrowerProfile, error) {
	m.calls++
	return m.profileByIDFn(ctx, borrowerID)
}

type mockAssessmentCache struct {
	getFn func(ctx context.Context, key string) (string, bool)
	setFn func(ctx context.Context, key, value string, ttl time.Duration) error
}

func (m *mockAssessmentCache) Get(ctx context.Context, key string) (string, bool) {
	if m.getFn == nil {
		return "", false
	}
	return m.getFn(ctx, key)
}

func (m *mockAssessmentCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.setFn == nil {
		return nil
	}
	return m.setFn(ctx, key, value, ttl)
}

type mockEventPublisher struct {
	publishFn func(ctx context.Context, events ...event.DomainEvent) error
	published []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFn == nil {
		return nil
	}
	return m.publishFn(ctx, events...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

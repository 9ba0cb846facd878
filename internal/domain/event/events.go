package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

// DomainEvent is the interface all financing domain events implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides a default DomainEvent implementation.
type BaseEvent struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	At            time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType string) BaseEvent {
	return BaseEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		At:            time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.AggregateKind }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// ---------------------------------------------------------------------------
// Financing events
// ---------------------------------------------------------------------------

// PreQualificationIssued is raised when a pre-qualification decision is
// produced for a borrower.
type PreQualificationIssued struct {
	BaseEvent
	BorrowerID       string                       `json:"borrower_id"`
	Status           model.PreQualificationStatus `json:"status"`
	MaxLoanAmount    decimal.Decimal              `json:"max_loan_amount"`
	EstimatedRatePct float64                      `json:"estimated_rate_pct"`
	ConditionCount   int                          `json:"condition_count"`
	ValidUntil       time.Time                    `json:"valid_until"`
}

// NewPreQualificationIssued builds the event from a decision.
func NewPreQualificationIssued(result model.PreQualificationResult) PreQualificationIssued {
	return PreQualificationIssued{
		BaseEvent:        NewBaseEvent("financing.prequalification.issued", result.ID, "PreQualification"),
		BorrowerID:       result.BorrowerID,
		Status:           result.Status,
		MaxLoanAmount:    result.EstimatedMaxLoanAmount,
		EstimatedRatePct: result.EstimatedRatePct,
		ConditionCount:   len(result.Conditions),
		ValidUntil:       result.ValidUntil,
	}
}

// FinancingOptionsRanked is raised when a ranked option list is produced.
// An empty ranking is still an event; consumers treat it as a valid outcome.
type FinancingOptionsRanked struct {
	BaseEvent
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	OptionCount    int             `json:"option_count"`
	TopLenderID    string          `json:"top_lender_id,omitempty"`
	TopScore       float64         `json:"top_score,omitempty"`
	HasRecommended bool            `json:"has_recommended"`
}

// NewFinancingOptionsRanked builds the event from a ranking outcome.
func NewFinancingOptionsRanked(loanAmount decimal.Decimal, options []model.FinancingOption) FinancingOptionsRanked {
	evt := FinancingOptionsRanked{
		BaseEvent:   NewBaseEvent("financing.options.ranked", uuid.NewString(), "FinancingRanking"),
		LoanAmount:  loanAmount,
		OptionCount: len(options),
	}
	if len(options) > 0 {
		evt.TopLenderID = options[0].LenderID
		evt.TopScore = options[0].ComparisonScore
		evt.HasRecommended = options[0].IsRecommended
	}
	return evt
}

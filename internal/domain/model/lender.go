package model

import "github.com/shopspring/decimal"

// RateType distinguishes the interest behavior of a loan product.
type RateType string

const (
	RateTypeFixed  RateType = "FIXED"
	RateTypeHybrid RateType = "HYBRID"
)

// Fee is a single named entry in a lender's fee schedule. Order within the
// schedule is meaningful and preserved.
type Fee struct {
	Name   string
	Amount decimal.Decimal
}

// LoanProduct is one mortgage product offered by a lender.
type LoanProduct struct {
	ID                string
	RateType          RateType
	MinTermYears      int
	MaxTermYears      int
	MinDownPaymentPct float64
	MaxDownPaymentPct float64
	EligibilityNotes  string
}

// LenderProfile describes a lender and its offered products. Profiles are
// catalog data owned by the catalog provider; the engine treats them as
// read-only.
type LenderProfile struct {
	ID             string
	Name           string
	MinLoanAmount  decimal.Decimal
	MaxLoanAmount  decimal.Decimal
	MinCreditScore int
	MaxLTVPct      float64
	FeeSchedule    []Fee
	Rating         float64
	ProcessingTime string
	Products       []LoanProduct
}

// LenderCatalog is an immutable snapshot of all lenders and their products,
// supplied per call by a LenderCatalogProvider. Iteration order is the
// provider's catalog order and is the tie-break order for ranking.
type LenderCatalog struct {
	Lenders []LenderProfile
}

// Clone returns a deep copy so providers can hand out snapshots without
// aliasing their backing store.
func (c LenderCatalog) Clone() LenderCatalog {
	out := LenderCatalog{Lenders: make([]LenderProfile, len(c.Lenders))}
	for i, l := range c.Lenders {
		copied := l
		copied.FeeSchedule = append([]Fee(nil), l.FeeSchedule...)
		copied.Products = append([]LoanProduct(nil), l.Products...)
		out.Lenders[i] = copied
	}
	return out
}

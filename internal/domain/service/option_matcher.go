package service

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/propstead/financing-service/internal/domain/model"
)

// closingCostRate is the flat closing-cost model applied to every option.
const closingCostRate = 0.02

// recommendationThreshold is the comparison score above which an option is
// flagged as recommended.
const recommendationThreshold = 80.0

// MatchRequest describes the borrower side of an option ranking.
type MatchRequest struct {
	LoanAmount    decimal.Decimal
	DownPayment   decimal.Decimal
	PropertyValue decimal.Decimal
	CreditScore   int
}

// FinancingOptionMatcher cross-joins a lender catalog against a borrower
// request, filters ineligible pairings, prices the rest via the risk scorer
// and amortization engine, and ranks them by comparison score.
type FinancingOptionMatcher struct {
	engine *AmortizationEngine
	scorer *CreditRiskScorer
}

// NewFinancingOptionMatcher wires the matcher's collaborators.
func NewFinancingOptionMatcher(engine *AmortizationEngine, scorer *CreditRiskScorer) *FinancingOptionMatcher {
	return &FinancingOptionMatcher{engine: engine, scorer: scorer}
}

// candidate is one lender/product pairing in catalog order.
type candidate struct {
	lender  model.LenderProfile
	product model.LoanProduct
}

// RankOptions evaluates every eligible lender/product pairing and returns
// them sorted by descending comparison score. Pairings with equal scores keep
// their catalog order. An empty catalog or a fully filtered one yields an
// empty list, not an error.
//
// Candidate evaluations are independent, so they fan out across workers; the
// results land in catalog-order slots before the final stable sort, keeping
// the output deterministic.
func (m *FinancingOptionMatcher) RankOptions(ctx context.Context, req MatchRequest, catalog model.LenderCatalog) ([]model.FinancingOption, error) {
	if req.LoanAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: loan amount must be positive", model.ErrInvalidInput)
	}
	if req.DownPayment.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: down payment cannot be negative", model.ErrInvalidInput)
	}

	ltv, err := m.engine.LoanToValue(req.LoanAmount, req.PropertyValue)
	if err != nil {
		return nil, err
	}

	var candidates []candidate
	for _, lender := range catalog.Lenders {
		if req.CreditScore < lender.MinCreditScore || ltv > lender.MaxLTVPct {
			continue
		}
		for _, product := range lender.Products {
			if !downPaymentEligible(req, product) {
				continue
			}
			candidates = append(candidates, candidate{lender: lender, product: product})
		}
	}

	results := make([]*model.FinancingOption, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			option, err := m.evaluate(req, ltv, c)
			if err != nil {
				return err
			}
			results[i] = &option
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	options := make([]model.FinancingOption, 0, len(results))
	for _, r := range results {
		options = append(options, *r)
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].ComparisonScore > options[j].ComparisonScore
	})
	return options, nil
}

// evaluate prices a single lender/product pairing.
func (m *FinancingOptionMatcher) evaluate(req MatchRequest, ltv float64, c candidate) (model.FinancingOption, error) {
	termYears := c.product.MaxTermYears

	rate := m.scorer.AdjustedRate(RateAdjustmentInput{
		CreditScore:    req.CreditScore,
		LoanToValuePct: ltv,
		RateType:       c.product.RateType,
		TermYears:      termYears,
	})

	payment, err := m.engine.MonthlyPayment(req.LoanAmount, rate, termYears)
	if err != nil {
		return model.FinancingOption{}, fmt.Errorf("price %s/%s: %w", c.lender.ID, c.product.ID, err)
	}

	months := decimal.NewFromInt(int64(termYears * monthsPerYear))
	totalCost := payment.Mul(months).Add(req.DownPayment).Round(2)
	closingCosts := req.LoanAmount.Mul(decimal.NewFromFloat(closingCostRate)).Round(2)
	score := comparisonScore(rate, c.lender)

	return model.FinancingOption{
		LenderID:        c.lender.ID,
		LenderName:      c.lender.Name,
		ProductID:       c.product.ID,
		TermYears:       termYears,
		RatePct:         rate,
		MonthlyPayment:  payment,
		TotalCost:       totalCost,
		ClosingCosts:    closingCosts,
		ComparisonScore: score,
		IsRecommended:   score > recommendationThreshold,
	}, nil
}

// comparisonScore starts at 100 and deducts for rate above the baseline,
// lender rating below 4.5, and slow processing.
func comparisonScore(ratePct float64, lender model.LenderProfile) float64 {
	score := 100.0
	if ratePct > BaseRatePct {
		score -= 20 * (ratePct - BaseRatePct)
	}
	if lender.Rating < 4.5 {
		score -= 10 * (4.5 - lender.Rating)
	}
	if strings.Contains(lender.ProcessingTime, "30") {
		score -= 5
	}
	return score
}

// downPaymentEligible checks the down payment against the product's allowed
// percentage band of the loan amount.
func downPaymentEligible(req MatchRequest, product model.LoanProduct) bool {
	downPct := req.DownPayment.InexactFloat64() / req.LoanAmount.InexactFloat64() * 100
	return downPct >= product.MinDownPaymentPct && downPct <= product.MaxDownPaymentPct
}

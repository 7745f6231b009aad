// Package service contains the business logic for the savings service.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/savings-service/internal/domain/model"
)

// DefaultCurrency is the currency every estimate is expressed in.
const DefaultCurrency = "USD"

// Pricing holds the per-seat monthly figures behind the savings formula.
type Pricing struct {
	SavingsPerTool    int
	BasicCost         int
	ProCost           int
	EnterpriseCost    int
	BasicMaxHeadcount int
	ProMaxHeadcount   int
	Months            int
	Currency          string
}

// DefaultPricing returns the standard pricing table.
func DefaultPricing() Pricing {
	return Pricing{
		SavingsPerTool:    80,
		BasicCost:         0,
		ProCost:           90,
		EnterpriseCost:    150,
		BasicMaxHeadcount: 50,
		ProMaxHeadcount:   500,
		Months:            12,
		Currency:          DefaultCurrency,
	}
}

// SavingsEstimator maps a headcount and an active tool count to a savings estimate.
type SavingsEstimator interface {
	Estimate(headcount, activeToolCount int) model.Estimate
	TierFor(headcount int) (model.Tier, int)
}

// EstimatorOption configures an EstimatorService.
type EstimatorOption func(*EstimatorService)

// EstimatorService implements SavingsEstimator. It keeps no state
// between calls apart from its pricing table.
type EstimatorService struct {
	pricing Pricing
}

// NewEstimatorService creates an EstimatorService with the given options.
func NewEstimatorService(opts ...EstimatorOption) *EstimatorService {
	s := &EstimatorService{pricing: DefaultPricing()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPricing overrides the pricing table. Zero-valued bounds, months
// and currency keep their defaults.
func WithPricing(p Pricing) EstimatorOption {
	return func(s *EstimatorService) {
		def := DefaultPricing()
		if p.BasicMaxHeadcount <= 0 {
			p.BasicMaxHeadcount = def.BasicMaxHeadcount
		}
		if p.ProMaxHeadcount <= 0 {
			p.ProMaxHeadcount = def.ProMaxHeadcount
		}
		if p.Months <= 0 {
			p.Months = def.Months
		}
		if p.Currency == "" {
			p.Currency = def.Currency
		}
		s.pricing = p
	}
}

// Pricing returns the active pricing table.
func (s *EstimatorService) Pricing() Pricing {
	return s.pricing
}

// TierFor returns the recommended tier and its per-seat monthly cost.
func (s *EstimatorService) TierFor(headcount int) (model.Tier, int) {
	switch {
	case headcount <= s.pricing.BasicMaxHeadcount:
		return model.TierBasic, s.pricing.BasicCost
	case headcount <= s.pricing.ProMaxHeadcount:
		return model.TierPro, s.pricing.ProCost
	default:
		return model.TierEnterprise, s.pricing.EnterpriseCost
	}
}

// Estimate computes headcount * (savingsPerTool * activeToolCount - tierCost) * months.
// The result is not clamped and is negative when the tier costs more than
// the tools it replaces.
func (s *EstimatorService) Estimate(headcount, activeToolCount int) model.Estimate {
	tier, tierCost := s.TierFor(headcount)
	perSeat := s.pricing.SavingsPerTool*activeToolCount - tierCost

	annual := decimal.NewFromInt(int64(headcount)).
		Mul(decimal.NewFromInt(int64(perSeat))).
		Mul(decimal.NewFromInt(int64(s.pricing.Months)))

	return model.Estimate{
		Headcount:             headcount,
		ActiveToolCount:       activeToolCount,
		Tier:                  tier,
		TierCost:              tierCost,
		MonthlySavingsPerSeat: perSeat,
		AnnualSavings:         annual,
		Currency:              s.pricing.Currency,
	}
}

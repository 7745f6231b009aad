//go:build !integration

package service

import (
	"testing"

	"github.com/guttosm/savings-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewEstimatorService(t *testing.T) {
	tests := []struct {
		name     string
		options  []EstimatorOption
		validate func(*testing.T, *EstimatorService)
	}{
		{
			name:    "uses default pricing when no options",
			options: nil,
			validate: func(t *testing.T, svc *EstimatorService) {
				assert.Equal(t, DefaultPricing(), svc.Pricing())
			},
		},
		{
			name: "custom pricing keeps default bounds",
			options: []EstimatorOption{WithPricing(Pricing{
				SavingsPerTool: 100,
				ProCost:        50,
				EnterpriseCost: 70,
			})},
			validate: func(t *testing.T, svc *EstimatorService) {
				p := svc.Pricing()
				assert.Equal(t, 100, p.SavingsPerTool)
				assert.Equal(t, 50, p.ProCost)
				assert.Equal(t, 50, p.BasicMaxHeadcount)
				assert.Equal(t, 500, p.ProMaxHeadcount)
				assert.Equal(t, 12, p.Months)
				assert.Equal(t, DefaultCurrency, p.Currency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEstimatorService(tt.options...)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

func TestEstimatorService_TierFor(t *testing.T) {
	svc := NewEstimatorService()

	tests := []struct {
		headcount    int
		expectedTier model.Tier
		expectedCost int
	}{
		{1, model.TierBasic, 0},
		{50, model.TierBasic, 0},
		{51, model.TierPro, 90},
		{100, model.TierPro, 90},
		{500, model.TierPro, 90},
		{501, model.TierEnterprise, 150},
		{1000, model.TierEnterprise, 150},
	}

	for _, tt := range tests {
		t.Run(tt.expectedTier.String(), func(t *testing.T) {
			tier, cost := svc.TierFor(tt.headcount)
			assert.Equal(t, tt.expectedTier, tier)
			assert.Equal(t, tt.expectedCost, cost)
		})
	}
}

func TestEstimatorService_Estimate(t *testing.T) {
	svc := NewEstimatorService()

	tests := []struct {
		name            string
		headcount       int
		activeToolCount int
		expectedSavings int64
		expectedTier    model.Tier
		expectedPerSeat int
	}{
		{
			name:            "100 seats and 3 tools",
			headcount:       100,
			activeToolCount: 3,
			expectedSavings: 180000,
			expectedTier:    model.TierPro,
			expectedPerSeat: 150,
		},
		{
			name:            "basic tier has no offset",
			headcount:       40,
			activeToolCount: 3,
			expectedSavings: 115200,
			expectedTier:    model.TierBasic,
			expectedPerSeat: 240,
		},
		{
			name:            "enterprise tier",
			headcount:       1000,
			activeToolCount: 5,
			expectedSavings: 3000000,
			expectedTier:    model.TierEnterprise,
			expectedPerSeat: 250,
		},
		{
			name:            "no tools yields zero on basic",
			headcount:       7,
			activeToolCount: 0,
			expectedSavings: 0,
			expectedTier:    model.TierBasic,
			expectedPerSeat: 0,
		},
		{
			name:            "negative savings are surfaced",
			headcount:       700,
			activeToolCount: 1,
			expectedSavings: -588000,
			expectedTier:    model.TierEnterprise,
			expectedPerSeat: -70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := svc.Estimate(tt.headcount, tt.activeToolCount)

			assert.True(t, decimal.NewFromInt(tt.expectedSavings).Equal(est.AnnualSavings),
				"expected %d, got %s", tt.expectedSavings, est.AnnualSavings)
			assert.Equal(t, tt.expectedTier, est.Tier)
			assert.Equal(t, tt.expectedPerSeat, est.MonthlySavingsPerSeat)
			assert.Equal(t, tt.headcount, est.Headcount)
			assert.Equal(t, tt.activeToolCount, est.ActiveToolCount)
			assert.Equal(t, "USD", est.Currency)
			assert.Equal(t, tt.expectedSavings < 0, est.IsLoss())
		})
	}
}

func TestEstimatorService_EstimateMatchesFormula(t *testing.T) {
	svc := NewEstimatorService()

	for headcount := MinHeadcount; headcount <= MaxHeadcount; headcount++ {
		_, tierCost := svc.TierFor(headcount)
		for n := 0; n <= 16; n++ {
			want := int64(headcount) * int64(80*n-tierCost) * 12
			got := svc.Estimate(headcount, n).AnnualSavings
			if !decimal.NewFromInt(want).Equal(got) {
				t.Fatalf("headcount=%d tools=%d: want %d, got %s", headcount, n, want, got)
			}
		}
	}
}

func TestEstimatorService_EstimateIsIdempotent(t *testing.T) {
	svc := NewEstimatorService()

	first := svc.Estimate(300, 4)
	second := svc.Estimate(300, 4)

	assert.True(t, first.AnnualSavings.Equal(second.AnnualSavings))
	assert.Equal(t, first.Tier, second.Tier)
	assert.Equal(t, first.MonthlySavingsPerSeat, second.MonthlySavingsPerSeat)
}

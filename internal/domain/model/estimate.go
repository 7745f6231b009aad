package model

import "github.com/shopspring/decimal"

// Tier is the recommended product plan for a headcount.
type Tier string

const (
	TierBasic      Tier = "Basic"
	TierPro        Tier = "Pro"
	TierEnterprise Tier = "Enterprise"
)

// String returns the tier label.
func (t Tier) String() string {
	return string(t)
}

// Estimate is the derived savings figure for one (headcount, active tools) pair.
//
// @Description Annual savings estimate and the recommended tier
// @Example {"headcount": 100, "active_tool_count": 3, "tier": "Pro", "tier_cost": 90, "monthly_savings_per_seat": 150, "annual_savings": "180000", "currency": "USD"}
type Estimate struct {
	// Headcount is the quantized number of seats
	Headcount int `json:"headcount" example:"100"`
	// ActiveToolCount is the number of tools replaced
	ActiveToolCount int `json:"active_tool_count" example:"3"`
	// Tier is the recommended plan
	Tier Tier `json:"tier" example:"Pro"`
	// TierCost is the per-seat monthly price of the tier
	TierCost int `json:"tier_cost" example:"90"`
	// MonthlySavingsPerSeat is savings per tool times tools, minus the tier cost
	MonthlySavingsPerSeat int `json:"monthly_savings_per_seat" example:"150"`
	// AnnualSavings may be negative when the tier costs more than the tools replaced
	AnnualSavings decimal.Decimal `json:"annual_savings" swaggertype:"string" example:"180000"`
	// Currency is the ISO code of AnnualSavings
	Currency string `json:"currency" example:"USD"`
}

// IsLoss reports whether the estimate is negative.
func (e Estimate) IsLoss() bool {
	return e.AnnualSavings.IsNegative()
}

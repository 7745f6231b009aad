package http

import (
	"time"

	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/domain/model"
	"github.com/guttosm/savings-service/internal/metrics"
	"github.com/guttosm/savings-service/internal/service"
	"github.com/guttosm/savings-service/internal/view"
)

// presenter derives display values from session state.
type presenter struct {
	estimator service.SavingsEstimator
}

// estimate runs the estimator and records the outcome.
func (p presenter) estimate(headcount, activeToolCount int) model.Estimate {
	start := time.Now()
	est := p.estimator.Estimate(headcount, activeToolCount)

	outcome := "savings"
	if est.IsLoss() {
		outcome = "loss"
	}
	metrics.RecordEstimate(time.Since(start), est.Tier.String(), outcome)
	return est
}

func (p presenter) estimateView(headcount, activeToolCount int) dto.EstimateView {
	est := p.estimate(headcount, activeToolCount)
	return dto.EstimateView{
		Headcount:             est.Headcount,
		Step:                  service.Step(est.Headcount),
		ActiveToolCount:       est.ActiveToolCount,
		Tier:                  est.Tier.String(),
		TierCost:              est.TierCost,
		MonthlySavingsPerSeat: est.MonthlySavingsPerSeat,
		AnnualSavings:         est.AnnualSavings,
		Currency:              est.Currency,
	}
}

func (p presenter) sessionView(s model.Session) dto.SessionView {
	selection := service.NewSelection(s.Tools)
	count := selection.ActiveCount()
	est := p.estimate(s.Headcount, count)

	tools := make([]dto.ToolView, len(s.Tools))
	for i, t := range s.Tools {
		tools[i] = dto.ToolView{
			ID:      t.ID,
			Name:    t.Name,
			Img:     t.Img,
			Checked: t.Checked,
			Locked:  selection.Locked(t.ID),
		}
	}

	return dto.SessionView{
		ID:              s.ID,
		Headcount:       s.Headcount,
		Step:            service.Step(s.Headcount),
		Tier:            est.Tier.String(),
		TierCost:        est.TierCost,
		AnnualSavings:   est.AnnualSavings,
		Currency:        est.Currency,
		ActiveToolCount: count,
		MinActiveTools:  service.MinActiveTools,
		BelowFloor:      selection.BelowFloor(),
		Digits:          view.Strips(count),
		Tools:           tools,
	}
}

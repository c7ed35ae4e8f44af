package strategy

import (
	"fmt"
	"math"

	"TadawulScout/internal/model"
)

// BuildPlan derives the linear entry/exit plan from the current price:
// entry 0.5% below, stop 5% below, targets 10% and 20% above. Each level
// is rounded to two decimals before the risk/reward ratios are computed.
// Since entry > stop for any positive price the ratio denominators are
// strictly positive; a non-positive or NaN price is rejected.
func BuildPlan(price float64) (model.EntryExitPlan, error) {
	if math.IsNaN(price) || price <= 0 {
		return model.EntryExitPlan{}, fmt.Errorf("build plan: price %v: %w", price, model.ErrInvalidInput)
	}

	entry := round2(price * 0.995)
	stop := round2(price * 0.95)
	target1 := round2(price * 1.10)
	target2 := round2(price * 1.20)

	return model.EntryExitPlan{
		CurrentPrice: round2(price),
		EntryPrice:   entry,
		StopLoss:     stop,
		Target1:      target1,
		Target2:      target2,
		RiskReward1:  round2((target1 - entry) / (entry - stop)),
		RiskReward2:  round2((target2 - entry) / (entry - stop)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

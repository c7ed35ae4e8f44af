package model

import "time"

// Signal is the three-valued classification a strategy assigns a security.
type Signal string

const (
	SignalBuy       Signal = "buy"
	SignalPromising Signal = "promising"
	SignalWatch     Signal = "watch"
)

// Condition is one named strategy predicate and its outcome. Condition
// order and names are a stable contract consumed by report serialization.
type Condition struct {
	Name string `json:"name"`
	Met  bool   `json:"met"`
}

// StrategyResult is the outcome of evaluating one strategy variant.
type StrategyResult struct {
	Conditions      []Condition `json:"conditions"`
	ConditionsMet   int         `json:"conditions_met"`
	TotalConditions int         `json:"total_conditions"`
	Percentage      float64     `json:"percentage"` // met/total*100, one decimal
	Signal          Signal      `json:"signal"`
}

// EntryExitPlan holds the suggested trade levels derived from the latest
// close. All values are rounded to two decimals.
type EntryExitPlan struct {
	CurrentPrice float64 `json:"current_price"`
	EntryPrice   float64 `json:"entry_price"`
	StopLoss     float64 `json:"stop_loss"`
	Target1      float64 `json:"target1"`
	Target2      float64 `json:"target2"`
	RiskReward1  float64 `json:"risk_reward_1"`
	RiskReward2  float64 `json:"risk_reward_2"`
}

// AnalysisReport is the full evaluation of one security: both strategy
// results, the trade plan and the latest indicator values. Reports are
// immutable once built and share no state with each other.
type AnalysisReport struct {
	Company    string            `json:"company"`
	Symbol     string            `json:"symbol"`
	Sector     string            `json:"sector"`
	Hawk       StrategyResult    `json:"hawk"`
	Quick      StrategyResult    `json:"quick"`
	EntryExit  EntryExitPlan     `json:"entry_exit"`
	Indicators IndicatorSnapshot `json:"indicators"`
	Timestamp  time.Time         `json:"timestamp"`
}

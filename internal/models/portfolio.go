package models

// PortfolioAnalytics carries the figures an analytics service computes
// for a whole portfolio.
type PortfolioAnalytics struct {
	DailyChange float64            `json:"daily_change" validate:"finite"`
	Volatility  map[string]float64 `json:"volatility" validate:"dive,finite"`
	Beta        float64            `json:"beta" validate:"finite"`
	SharpeRatio float64            `json:"sharpe_ratio" validate:"finite"`
}

// SummaryInput is what a portfolio summary is derived from.
type SummaryInput struct {
	TotalValue    float64 `json:"total_value" validate:"finite"`
	TotalInvested float64 `json:"total_invested" validate:"finite"`
	PortfolioAnalytics
}

// PortfolioSummary is the aggregate view of a user's positions
type PortfolioSummary struct {
	TotalValue         float64            `json:"total_value" validate:"finite"`
	TotalInvested      float64            `json:"total_invested" validate:"finite"`
	TotalGainLoss      float64            `json:"total_gain_loss" validate:"finite"`
	GainLossPercent    float64            `json:"gain_loss_percent" validate:"finite"`
	DailyChange        float64            `json:"daily_change" validate:"finite"`
	DailyChangePercent float64            `json:"daily_change_percent" validate:"finite"`
	Volatility         map[string]float64 `json:"volatility" validate:"dive,finite"`
	Beta               float64            `json:"beta" validate:"finite"`
	SharpeRatio        float64            `json:"sharpe_ratio" validate:"finite"`
}

// NewPortfolioSummary derives gain/loss and the percentages from in.
// The daily change percentage is relative to the value before the change.
func NewPortfolioSummary(in SummaryInput) (PortfolioSummary, error) {
	gainLoss := in.TotalValue - in.TotalInvested
	previous := in.TotalValue - in.DailyChange

	volatility := make(map[string]float64, len(in.Volatility))
	for k, v := range in.Volatility {
		volatility[k] = v
	}

	s := PortfolioSummary{
		TotalValue:         in.TotalValue,
		TotalInvested:      in.TotalInvested,
		TotalGainLoss:      gainLoss,
		GainLossPercent:    percentOf(gainLoss, in.TotalInvested),
		DailyChange:        in.DailyChange,
		DailyChangePercent: percentOf(in.DailyChange, previous),
		Volatility:         volatility,
		Beta:               in.Beta,
		SharpeRatio:        in.SharpeRatio,
	}
	if err := Validate(&s); err != nil {
		return PortfolioSummary{}, err
	}
	return s, nil
}

// SummarizePositions totals positions and combines them with the
// portfolio-level analytics.
func SummarizePositions(positions []PositionWithMetrics, analytics PortfolioAnalytics) (PortfolioSummary, error) {
	in := SummaryInput{PortfolioAnalytics: analytics}
	for _, p := range positions {
		in.TotalValue += p.TotalValue
		in.TotalInvested += p.Invested
	}
	return NewPortfolioSummary(in)
}

// HistoryPoint is the portfolio value on one day.
type HistoryPoint struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Value float64 `json:"value" validate:"finite"`
}

package models

import "time"

// MarketSnapshot is the externally computed market data for one position.
type MarketSnapshot struct {
	CurrentPrice float64   `json:"current_price" validate:"gte=0,finite"`
	Beta         float64   `json:"beta" validate:"finite"`
	Volatility   float64   `json:"volatility" validate:"finite"`
	LastUpdate   time.Time `json:"last_update"`
}

// PositionMetrics holds the figures derived for a position on read.
type PositionMetrics struct {
	CurrentPrice    float64 `json:"current_price" validate:"gte=0,finite"`
	TotalValue      float64 `json:"total_value" validate:"finite"`
	Invested        float64 `json:"invested" validate:"finite"`
	GainLoss        float64 `json:"gain_loss" validate:"finite"`
	GainLossPercent float64 `json:"gain_loss_percent" validate:"finite"`
	Weight          float64 `json:"weight" validate:"gte=0,finite"`
	Beta            float64 `json:"beta" validate:"finite"`
	Volatility      float64 `json:"volatility" validate:"finite"`
	LastUpdate      string  `json:"last_update"`
}

// PositionWithMetrics is a Position together with its metrics. Both are
// embedded so the JSON form stays flat.
type PositionWithMetrics struct {
	Position
	PositionMetrics
}

// NewPositionWithMetrics derives the metrics of p at market price m.
// Weight is the position's share of portfolioValue in percent, 0 when
// portfolioValue is 0.
func NewPositionWithMetrics(p Position, m MarketSnapshot, portfolioValue float64) (PositionWithMetrics, error) {
	if err := Validate(&m); err != nil {
		return PositionWithMetrics{}, err
	}

	lastUpdate := m.LastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = now()
	}

	invested := p.Quantity * p.AvgPrice
	totalValue := p.Quantity * m.CurrentPrice
	gainLoss := totalValue - invested

	out := PositionWithMetrics{
		Position: p,
		PositionMetrics: PositionMetrics{
			CurrentPrice:    m.CurrentPrice,
			TotalValue:      totalValue,
			Invested:        invested,
			GainLoss:        gainLoss,
			GainLossPercent: percentOf(gainLoss, invested),
			Weight:          percentOf(totalValue, portfolioValue),
			Beta:            m.Beta,
			Volatility:      m.Volatility,
			LastUpdate:      lastUpdate.UTC().Format(time.RFC3339),
		},
	}
	if err := Validate(&out); err != nil {
		return PositionWithMetrics{}, err
	}
	return out, nil
}

// Reweight sets every position's weight against their combined value.
func Reweight(positions []PositionWithMetrics) []PositionWithMetrics {
	var total float64
	for _, p := range positions {
		total += p.TotalValue
	}
	out := make([]PositionWithMetrics, len(positions))
	for i, p := range positions {
		p.Weight = percentOf(p.TotalValue, total)
		out[i] = p
	}
	return out
}

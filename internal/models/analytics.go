package models

// CorrelationItem is the correlation of two instruments' returns.
type CorrelationItem struct {
	Symbol1     string  `json:"symbol1" validate:"required"`
	Symbol2     string  `json:"symbol2" validate:"required"`
	Correlation float64 `json:"correlation" validate:"gte=-1,lte=1"`
}

// NewCorrelationItem validates a correlation coming from the analytics
// service.
func NewCorrelationItem(symbol1, symbol2 string, correlation float64) (CorrelationItem, error) {
	c := CorrelationItem{
		Symbol1:     symbol1,
		Symbol2:     symbol2,
		Correlation: correlation,
	}
	if err := Validate(&c); err != nil {
		return CorrelationItem{}, err
	}
	return c, nil
}

// Recommendation is an advisory message shown to the user
type Recommendation struct {
	ID          string             `json:"id" validate:"required"`
	Type        RecommendationType `json:"type" validate:"required,enum"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Priority    Priority           `json:"priority" validate:"required,enum"`
}

// NewRecommendation fills in the ID of r when it is unset and validates
// the result.
func NewRecommendation(r Recommendation) (Recommendation, error) {
	if r.ID == "" {
		r.ID = newID()
	}
	if err := Validate(&r); err != nil {
		return Recommendation{}, err
	}
	return r, nil
}

// MarketQuote is a price snapshot from a market data feed
type MarketQuote struct {
	Symbol        string  `json:"symbol" validate:"required"`
	Name          string  `json:"name"`
	Price         float64 `json:"price" validate:"gte=0,finite"`
	Change        float64 `json:"change" validate:"finite"`
	ChangePercent float64 `json:"change_percent" validate:"finite"`
	Volume        int64   `json:"volume" validate:"gte=0"`
}

// NewMarketQuote validates q.
func NewMarketQuote(q MarketQuote) (MarketQuote, error) {
	if err := Validate(&q); err != nil {
		return MarketQuote{}, err
	}
	return q, nil
}

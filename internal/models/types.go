package models

// AssetType is the kind of instrument a position holds.
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetCrypto AssetType = "crypto"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetStock, AssetCrypto:
		return true
	}
	return false
}

// TransactionType is the side of a trade.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionBuy, TransactionSell:
		return true
	}
	return false
}

// RecommendationType classifies an advisory message.
type RecommendationType string

const (
	RecommendationWarning RecommendationType = "warning"
	RecommendationInfo    RecommendationType = "info"
	RecommendationSuccess RecommendationType = "success"
)

func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationWarning, RecommendationInfo, RecommendationSuccess:
		return true
	}
	return false
}

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// AlertType is the condition an alert watches for.
type AlertType string

const (
	AlertPriceAbove     AlertType = "price_above"
	AlertPriceBelow     AlertType = "price_below"
	AlertVolatilityHigh AlertType = "volatility_high"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertPriceAbove, AlertPriceBelow, AlertVolatilityHigh:
		return true
	}
	return false
}

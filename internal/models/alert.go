package models

import "time"

// AlertCreate - what client sends to set up an alert
type AlertCreate struct {
	Symbol      string    `json:"symbol" validate:"required"`
	Type        AlertType `json:"alert_type" validate:"required,enum"`
	TargetValue float64   `json:"target_value" validate:"gt=0,finite"`
	Notes       string    `json:"notes"`
}

// Alert watches one symbol for a price or volatility threshold
type Alert struct {
	ID          string    `json:"id" validate:"required"`
	UserID      string    `json:"user_id" validate:"required"`
	Symbol      string    `json:"symbol" validate:"required"`
	Type        AlertType `json:"alert_type" validate:"required,enum"`
	TargetValue float64   `json:"target_value" validate:"gt=0,finite"`
	Notes       string    `json:"notes"`
	IsActive    bool      `json:"is_active"`
	IsTriggered bool      `json:"is_triggered"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
}

// NewAlert fills in the ID and CreatedAt of a when they are unset and
// validates the result.
func NewAlert(a Alert) (Alert, error) {
	if a.ID == "" {
		a.ID = newID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now()
	}
	if err := Validate(&a); err != nil {
		return Alert{}, err
	}
	return a, nil
}

// Alert builds an active alert owned by userID.
func (in AlertCreate) Alert(userID string) (Alert, error) {
	if err := Validate(&in); err != nil {
		return Alert{}, err
	}
	return NewAlert(Alert{
		UserID:      userID,
		Symbol:      in.Symbol,
		Type:        in.Type,
		TargetValue: in.TargetValue,
		Notes:       in.Notes,
		IsActive:    true,
	})
}

// Matches reports whether an active alert's condition holds for quote.
// volatility is only used by volatility alerts.
func (a Alert) Matches(quote MarketQuote, volatility float64) bool {
	if !a.IsActive || quote.Symbol != a.Symbol {
		return false
	}
	switch a.Type {
	case AlertPriceAbove:
		return quote.Price >= a.TargetValue
	case AlertPriceBelow:
		return quote.Price <= a.TargetValue
	case AlertVolatilityHigh:
		return volatility >= a.TargetValue
	default:
		return false
	}
}

// SetActive returns a re-validated copy of a with IsActive set.
// Reactivating an alert clears IsTriggered so it can fire again.
func (a Alert) SetActive(active bool) (Alert, error) {
	if active && !a.IsActive {
		a.IsTriggered = false
	}
	a.IsActive = active
	if err := Validate(&a); err != nil {
		return Alert{}, err
	}
	return a, nil
}

// Trigger returns a re-validated copy of a with IsTriggered set when its
// condition holds for quote. An alert that already fired stays triggered.
func (a Alert) Trigger(quote MarketQuote, volatility float64) (Alert, error) {
	if a.Matches(quote, volatility) {
		a.IsTriggered = true
	}
	if err := Validate(&a); err != nil {
		return Alert{}, err
	}
	return a, nil
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertCreate_Alert(t *testing.T) {
	useClock(t, fixedNow)

	a, err := AlertCreate{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 300, Notes: "take profit"}.Alert("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "user-1", a.UserID)
	assert.True(t, a.IsActive)
	assert.False(t, a.IsTriggered)
	assert.Equal(t, fixedNow, a.CreatedAt)
}

func TestAlertCreate_Invalid(t *testing.T) {
	_, err := AlertCreate{Symbol: "TSLA", Type: "price_equal", TargetValue: 300}.Alert("user-1")
	requireFieldError(t, err, "alert_type", "enum")

	_, err = AlertCreate{Symbol: "TSLA", Type: AlertPriceBelow}.Alert("user-1")
	requireFieldError(t, err, "target_value", "gt")
}

func TestAlert_Matches(t *testing.T) {
	quote := MarketQuote{Symbol: "TSLA", Price: 268.75}

	tests := []struct {
		name       string
		alert      Alert
		volatility float64
		expected   bool
	}{
		{"above hit", Alert{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 250, IsActive: true}, 0, true},
		{"above miss", Alert{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 300, IsActive: true}, 0, false},
		{"below hit", Alert{Symbol: "TSLA", Type: AlertPriceBelow, TargetValue: 270, IsActive: true}, 0, true},
		{"below miss", Alert{Symbol: "TSLA", Type: AlertPriceBelow, TargetValue: 200, IsActive: true}, 0, false},
		{"volatility hit", Alert{Symbol: "TSLA", Type: AlertVolatilityHigh, TargetValue: 40, IsActive: true}, 45.2, true},
		{"volatility miss", Alert{Symbol: "TSLA", Type: AlertVolatilityHigh, TargetValue: 50, IsActive: true}, 45.2, false},
		{"inactive", Alert{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 250}, 0, false},
		{"other symbol", Alert{Symbol: "AAPL", Type: AlertPriceAbove, TargetValue: 1, IsActive: true}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.alert.Matches(quote, tt.volatility))
		})
	}
}

func TestAlert_SetActive(t *testing.T) {
	useClock(t, fixedNow)
	a, err := AlertCreate{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 250}.Alert("user-1")
	require.NoError(t, err)
	a.IsTriggered = true

	paused, err := a.SetActive(false)
	require.NoError(t, err)
	assert.False(t, paused.IsActive)
	assert.True(t, paused.IsTriggered)
	assert.True(t, a.IsActive, "receiver is not modified")

	resumed, err := paused.SetActive(true)
	require.NoError(t, err)
	assert.True(t, resumed.IsActive)
	assert.False(t, resumed.IsTriggered)

	_, err = Alert{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 250}.SetActive(true)
	requireFieldError(t, err, "id", "required")
}

func TestAlert_Trigger(t *testing.T) {
	useClock(t, fixedNow)
	quote := MarketQuote{Symbol: "TSLA", Price: 268.75}

	tests := []struct {
		name      string
		in        AlertCreate
		active    bool
		triggered bool
		expected  bool
	}{
		{"condition holds", AlertCreate{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 250}, true, false, true},
		{"condition fails", AlertCreate{Symbol: "TSLA", Type: AlertPriceBelow, TargetValue: 250}, true, false, false},
		{"inactive", AlertCreate{Symbol: "TSLA", Type: AlertPriceAbove, TargetValue: 250}, false, false, false},
		{"stays triggered", AlertCreate{Symbol: "TSLA", Type: AlertPriceBelow, TargetValue: 250}, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.in.Alert("user-1")
			require.NoError(t, err)
			a.IsActive = tt.active
			a.IsTriggered = tt.triggered

			got, err := a.Trigger(quote, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.IsTriggered)
			assert.Equal(t, tt.active, got.IsActive)
		})
	}
}

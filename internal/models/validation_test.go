package models

import (
	"errors"
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_InvalidEmail(t *testing.T) {
	err := Validate(UserCreate{Name: "Jean", Email: "not-an-email", Password: "secret"})
	requireFieldError(t, err, "email", "email")
}

func TestValidate_UnknownAssetType(t *testing.T) {
	err := Validate(PositionCreate{Symbol: "AAPL", Type: "bond", Quantity: 1, AvgPrice: 10})
	requireFieldError(t, err, "type", "enum")
}

func TestValidate_UnknownTransactionType(t *testing.T) {
	err := Validate(TransactionCreate{Symbol: "AAPL", Type: "short", Quantity: 1, Price: 10})
	requireFieldError(t, err, "type", "enum")
}

func TestValidate_ReportsEveryField(t *testing.T) {
	err := Validate(&PositionCreate{})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("symbol"))
	assert.True(t, verrs.Has("type"))
	assert.True(t, verrs.Has("quantity"))
	assert.True(t, verrs.Has("avg_price"))
	assert.False(t, verrs.Has("name"))
}

func TestValidate_FiniteRule(t *testing.T) {
	err := Validate(MarketQuote{Symbol: "AAPL", Price: math.Inf(1)})
	requireFieldError(t, err, "price", "finite")
}

func TestValidationErrors_AsSingleError(t *testing.T) {
	err := Validate(UserLogin{Email: "jean.dupont@example.com"})

	var fe ValidationError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "password", fe.Field)
	assert.Equal(t, "required", fe.Rule)
	assert.Equal(t, "password: is required", fe.Error())
}

func TestValidationError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{"email", ValidationError{Field: "email", Rule: "email", Value: "x"}, "email: must be a valid email address (got x)"},
		{"gt", ValidationError{Field: "quantity", Rule: "gt", Param: "0", Value: -1.0}, "quantity: must be greater than 0 (got -1)"},
		{"unknown rule", ValidationError{Field: "id", Rule: "uuid4", Value: "1"}, `id: failed "uuid4" rule (got 1)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := Validate(42)
	require.Error(t, err)

	var verrs ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	assert.Panics(t, func() {
		mustRegister(newValidator(), "", func(validator.FieldLevel) bool { return true })
	})
	assert.NotPanics(t, func() { newValidator() })
}

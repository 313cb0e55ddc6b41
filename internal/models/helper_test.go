package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

// useClock pins the package clock for the duration of a test.
func useClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

// requireFieldError asserts that err is a ValidationErrors reporting rule
// on field.
func requireFieldError(t *testing.T, err error, field, rule string) {
	t.Helper()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T: %v", err, err)

	fe, ok := verrs.Field(field)
	require.True(t, ok, "no error on field %q in %v", field, verrs)
	require.Equal(t, rule, fe.Rule)
}

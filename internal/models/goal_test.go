package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalCreate_Goal(t *testing.T) {
	useClock(t, fixedNow)
	target := fixedNow.AddDate(1, 0, 0)

	g, err := GoalCreate{Title: "House deposit", TargetAmount: 60000, TargetDate: &target}.Goal("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.False(t, g.IsCompleted)
	assert.Equal(t, fixedNow, g.CreatedAt)

	_, err = GoalCreate{Title: "Nothing"}.Goal("user-1")
	requireFieldError(t, err, "target_amount", "gt")
}

func TestGoal_Progress(t *testing.T) {
	g := Goal{TargetAmount: 50000}

	assert.Equal(t, 50.0, g.Progress(25000))
	assert.Equal(t, 100.0, g.Progress(75000))
	assert.Equal(t, 0.0, g.Progress(-10))
	assert.Equal(t, 0.0, Goal{}.Progress(100))
}

func TestGoal_DaysRemaining(t *testing.T) {
	assert.Nil(t, Goal{}.DaysRemaining(fixedNow))

	target := fixedNow.Add(36 * time.Hour)
	days := Goal{TargetDate: &target}.DaysRemaining(fixedNow)
	require.NotNil(t, days)
	assert.Equal(t, 2, *days)

	past := fixedNow.Add(-48 * time.Hour)
	days = Goal{TargetDate: &past}.DaysRemaining(fixedNow)
	require.NotNil(t, days)
	assert.Equal(t, -2, *days)
}

func TestGoal_DaysRemainingFarFuture(t *testing.T) {
	target := time.Date(2525, 1, 15, 10, 30, 0, 0, time.UTC)
	days := Goal{TargetDate: &target}.DaysRemaining(fixedNow)
	require.NotNil(t, days)
	assert.Equal(t, int((target.Unix()-fixedNow.Unix())/(24*60*60)), *days)
	assert.Greater(t, *days, 106751)
}

func TestGoal_SetCompleted(t *testing.T) {
	useClock(t, fixedNow)
	g, err := GoalCreate{Title: "House deposit", TargetAmount: 60000}.Goal("user-1")
	require.NoError(t, err)

	tests := []struct {
		name      string
		completed bool
	}{
		{"complete", true},
		{"reopen", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.SetCompleted(tt.completed)
			require.NoError(t, err)
			assert.Equal(t, tt.completed, got.IsCompleted)
			assert.Equal(t, g.ID, got.ID)
		})
	}

	_, err = Goal{Title: "No owner", TargetAmount: 1, CreatedAt: fixedNow, ID: "g"}.SetCompleted(true)
	requireFieldError(t, err, "user_id", "required")
}

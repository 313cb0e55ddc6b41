package models

import (
	"math"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// GoalCreate - what client sends to set a savings target
type GoalCreate struct {
	Title        string     `json:"title" validate:"required"`
	TargetAmount float64    `json:"target_amount" validate:"gt=0,finite"`
	TargetDate   *time.Time `json:"target_date"`
	Description  string     `json:"description"`
}

// Goal is a portfolio value the user wants to reach
type Goal struct {
	ID           string     `json:"id" validate:"required"`
	UserID       string     `json:"user_id" validate:"required"`
	Title        string     `json:"title" validate:"required"`
	TargetAmount float64    `json:"target_amount" validate:"gt=0,finite"`
	TargetDate   *time.Time `json:"target_date"`
	Description  string     `json:"description"`
	IsCompleted  bool       `json:"is_completed"`
	CreatedAt    time.Time  `json:"created_at" validate:"required"`
}

// NewGoal fills in the ID and CreatedAt of g when they are unset and
// validates the result.
func NewGoal(g Goal) (Goal, error) {
	if g.ID == "" {
		g.ID = newID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now()
	}
	if err := Validate(&g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// Goal builds an open goal owned by userID.
func (in GoalCreate) Goal(userID string) (Goal, error) {
	if err := Validate(&in); err != nil {
		return Goal{}, err
	}
	return NewGoal(Goal{
		UserID:       userID,
		Title:        in.Title,
		TargetAmount: in.TargetAmount,
		TargetDate:   in.TargetDate,
		Description:  in.Description,
	})
}

// SetCompleted returns a re-validated copy of g with IsCompleted set.
func (g Goal) SetCompleted(completed bool) (Goal, error) {
	g.IsCompleted = completed
	if err := Validate(&g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// Progress is totalValue as a percentage of the target, between 0 and 100.
func (g Goal) Progress(totalValue float64) float64 {
	return math.Max(0, math.Min(percentOf(totalValue, g.TargetAmount), 100))
}

// DaysRemaining counts the days left until the target date, rounding
// partial days up. It is nil for goals without a date.
func (g Goal) DaysRemaining(at time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}
	// Sub saturates after ~292 years, whole seconds do not
	seconds := float64(g.TargetDate.Unix()-at.Unix()) +
		float64(g.TargetDate.Nanosecond()-at.Nanosecond())/float64(time.Second)
	days := int(math.Ceil(seconds / secondsPerDay))
	return &days
}

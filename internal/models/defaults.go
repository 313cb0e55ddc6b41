package models

import (
	"time"

	"github.com/google/uuid"
)

// now is the clock used for defaulted timestamps. Tests replace it.
var now = func() time.Time {
	return time.Now().UTC()
}

// newID returns a random (version 4) UUID in its canonical string form.
func newID() string {
	return uuid.NewString()
}

// percentOf returns part/whole as a percentage, or 0 when whole is 0.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

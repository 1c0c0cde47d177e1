package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed values for deterministic testing.
var (
	FixedTime         = time.Date(2026, time.March, 14, 2, 30, 0, 0, time.UTC)
	FixedAssessmentID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
)

// FixedClock returns a clock that always reports FixedTime.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedTime }
}

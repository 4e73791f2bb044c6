/*
Package compliance resolves the compliance year a packaging record is
attributed to.

PURPOSE:
  The compliance year is normally the calendar year of the instant being
  looked at. The single exception is January 2026: the 2025 scheme rules
  remain in force through the end of January 2026, so any instant in that
  month still resolves to 2025. The new rules take effect on 1 February 2026.

  The carve-out is intentionally narrow. It covers exactly one month and
  must not be widened or generalized into a configurable transition table.

SEE ALSO:
  - prn/acceptance.go: Uses the compliance year to bound acceptance windows
  - clock/clock.go: Time source injected by callers
*/
package compliance

import (
	"time"

	"github.com/packlane/compliance-engine/clock"
)

// transition pins the one-month bridge between the 2025 and 2026 schemes.
const (
	transitionYear  = 2026
	transitionMonth = time.January
)

// YearAt returns the compliance year for the given instant.
func YearAt(t time.Time) int {
	t = t.UTC()
	if t.Year() == transitionYear && t.Month() == transitionMonth {
		return transitionYear - 1
	}
	return t.Year()
}

// Year returns the current compliance year according to the given clock.
func Year(c clock.Clock) int {
	return YearAt(c.Now())
}

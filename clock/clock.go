/*
Package clock provides the injectable time source used by every temporal
component in the engine.

PURPOSE:
  Registration windows, compliance years, and PRN acceptance windows are all
  pure functions of "now". Nothing in the engine calls time.Now() directly;
  everything takes a Clock so tests (and demo environments) can replay any
  point in time.

IMPLEMENTATIONS:
  System:  real UTC wall clock (production)
  Offset:  real time shifted by a fixed duration (simulate past/future "now"
           while time still advances)
  Fixed:   frozen instant (unit tests)

USAGE:
  provider := regperiod.NewProvider(patterns, clock.System{})

  // Test against a specific instant
  c := clock.NewFixed(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))

SEE ALSO:
  - compliance/year.go: Consumes instants from a Clock
  - regperiod/provider.go: Rebuild trigger keyed on Clock year
*/
package clock

import "time"

// Clock supplies the current instant in UTC.
type Clock interface {
	Now() time.Time
}

// System is the production clock.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Offset replays real time shifted by a fixed duration. Useful for demo
// environments that need to appear to run in a past or future year.
type Offset struct {
	Delta time.Duration
}

func (o Offset) Now() time.Time { return time.Now().UTC().Add(o.Delta) }

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// NewFixed creates a frozen clock at the given instant.
func NewFixed(at time.Time) Fixed { return Fixed{At: at.UTC()} }

func (f Fixed) Now() time.Time { return f.At }

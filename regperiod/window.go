/*
window.go - Concrete registration window and its derived status

PURPOSE:
  A Window is one absolute time span (open -> late-fee deadline -> close)
  for one producer category in one registration year. Windows are built
  only by the Provider and never modified afterwards; their status is
  derived from "now" on every read and never stored.

BOUNDARY SEMANTICS:
  Intervals are closed-open on the lower edge - each boundary instant
  belongs to the state it opens:

    now <  opening             PriorToOpening
    opening <= now < deadline  OpenAndNotLate
    deadline <= now < closing  OpenAndLate
    closing <= now             Closed

SEE ALSO:
  - types.go: WindowType and journey classification
  - provider.go: Construction and the active-window query
*/
package regperiod

import "time"

// =============================================================================
// WINDOW STATUS
// =============================================================================

// WindowStatus is the position of "now" relative to a window's boundaries.
type WindowStatus string

const (
	PriorToOpening WindowStatus = "PriorToOpening"
	OpenAndNotLate WindowStatus = "OpenAndNotLate"
	OpenAndLate    WindowStatus = "OpenAndLate"
	Closed         WindowStatus = "Closed"
)

// =============================================================================
// WINDOW
// =============================================================================

// Window is a concrete, immutable registration window.
type Window struct {
	Type             WindowType
	Journey          *Journey
	IsCso            bool
	RegistrationYear int
	OpeningDate      time.Time
	Deadline         time.Time
	ClosingDate      time.Time
}

// newWindow resolves a template against a registration year.
func newWindow(t WindowTemplate, year int) Window {
	journey, isCso := t.Type.Classify()
	return Window{
		Type:             t.Type,
		Journey:          journey,
		IsCso:            isCso,
		RegistrationYear: year,
		OpeningDate:      t.OpeningDate.Resolve(year),
		Deadline:         t.Deadline.Resolve(year),
		ClosingDate:      t.ClosingDate.Resolve(year),
	}
}

// StatusAt derives the window status for the given instant.
func (w Window) StatusAt(now time.Time) WindowStatus {
	now = now.UTC()
	switch {
	case now.Before(w.OpeningDate):
		return PriorToOpening
	case now.Before(w.Deadline):
		return OpenAndNotLate
	case now.Before(w.ClosingDate):
		return OpenAndLate
	default:
		return Closed
	}
}

// IsLateAt reports whether registering at the given instant incurs the
// late fee. Only meaningful while the window is open.
func (w Window) IsLateAt(now time.Time) bool {
	return w.StatusAt(now) == OpenAndLate
}

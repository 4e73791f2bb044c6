/*
errors.go - Configuration error types for pattern expansion

PURPOSE:
  The only failure mode in this package is bad configuration: two patterns
  claiming the same registration year. That is fatal - it means two rule
  sets apply to the same year and there is no defensible way to pick one.
  It must surface at startup validation, not be merged away at runtime.

USAGE:
  Callers can branch on the sentinel:

    if errors.Is(err, regperiod.ErrDuplicateRegistrationYear) { ... }

  or extract the detail:

    var dup *regperiod.DuplicateYearError
    if errors.As(err, &dup) { log.Fatal(dup.Year) }

SEE ALSO:
  - provider.go: Raises these during expansion
*/
package regperiod

import (
	"errors"
	"fmt"
)

// ErrDuplicateRegistrationYear is returned when more than one pattern
// produces windows for the same registration year.
var ErrDuplicateRegistrationYear = errors.New("duplicate registration year across patterns")

// DuplicateYearError names the offending year and the two patterns that
// both claim it.
type DuplicateYearError struct {
	Year           int
	Pattern        string
	ExistingPattern string
}

func (e *DuplicateYearError) Error() string {
	return fmt.Sprintf("registration year %d produced by both pattern %q and pattern %q",
		e.Year, e.ExistingPattern, e.Pattern)
}

func (e *DuplicateYearError) Unwrap() error {
	return ErrDuplicateRegistrationYear
}

/*
Package regperiod derives concrete registration windows from configured
yearly patterns.

PURPOSE:
  Producer registration opens and closes on dates that recur every year but
  differ by producer category (direct registrant vs compliance scheme,
  large vs small). Rather than hard-coding a calendar, the windows are
  described by a small set of patterns, each valid for a span of
  registration years, and expanded on demand into absolute UTC windows.

KEY CONCEPTS IN THIS FILE (types.go):
  - WindowType: producer/scheme category tag for a window template
  - Journey:    which registration journey a window belongs to
  - DateTemplate: (yearOffset, month, day) recurring date rule
  - WindowTemplate / Pattern: the configured recurring structure

INVARIANT:
  Across all configured patterns, no registration year may be produced by
  more than one pattern. The expansion aborts with a configuration error
  when that happens (see provider.go) - two rule sets claiming the same
  year is unresolvable ambiguity, not something to merge.

SEE ALSO:
  - window.go: Concrete Window and its status derivation
  - provider.go: Expansion, caching, and the duplicate-year check
  - factory/pattern.go: JSON configuration loading
*/
package regperiod

import "time"

// =============================================================================
// WINDOW TYPES AND JOURNEY MAPPING
// =============================================================================

// WindowType tags a window template with the producer/scheme category it
// applies to. LegacyCso covers pre-split configuration where compliance
// schemes had a single undifferentiated window.
type WindowType string

const (
	WindowDirectLargeProducer WindowType = "DirectLargeProducer"
	WindowDirectSmallProducer WindowType = "DirectSmallProducer"
	WindowCsoLargeProducer    WindowType = "CsoLargeProducer"
	WindowCsoSmallProducer    WindowType = "CsoSmallProducer"
	WindowLegacyCso           WindowType = "Cso"
)

// Journey identifies which registration journey a window drives.
type Journey string

const (
	JourneyDirect Journey = "Direct"
	JourneyCso    Journey = "Cso"
)

// Classify maps a window type to its registration journey (nil when the
// type predates the journey split or is unrecognized) and its compliance
// scheme flag. The mapping is total: every WindowType constant above has
// an explicit arm, and anything else is treated as a non-scheme window
// with no journey.
func (wt WindowType) Classify() (journey *Journey, isCso bool) {
	direct, cso := JourneyDirect, JourneyCso
	switch wt {
	case WindowCsoLargeProducer:
		return &cso, true
	case WindowCsoSmallProducer:
		return &cso, true
	case WindowDirectLargeProducer:
		return &direct, false
	case WindowDirectSmallProducer:
		return &direct, false
	case WindowLegacyCso:
		return nil, true
	default:
		return nil, false
	}
}

// =============================================================================
// RECURRING DATE AND WINDOW TEMPLATES
// =============================================================================

// DateTemplate is a recurring date rule relative to a registration year.
// YearOffset is usually 0 or -1 (windows for year Y often open during
// Y-1). Resolved dates are midnight UTC.
type DateTemplate struct {
	YearOffset int
	Month      time.Month
	Day        int
}

// Resolve computes the absolute instant for a given registration year.
func (d DateTemplate) Resolve(year int) time.Time {
	return time.Date(year+d.YearOffset, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// WindowTemplate describes one recurring window within a pattern.
type WindowTemplate struct {
	Type        WindowType
	OpeningDate DateTemplate
	Deadline    DateTemplate
	ClosingDate DateTemplate
}

// Pattern is a named rule set valid for a span of registration years.
// FinalRegistrationYear is optional: when nil the final year is derived
// from the current year so that windows opening ahead of their
// registration year (negative opening offset) are always generated far
// enough into the future.
type Pattern struct {
	Name                    string
	InitialRegistrationYear int
	FinalRegistrationYear   *int
	Windows                 []WindowTemplate
}

// finalYear resolves the last registration year this pattern should
// generate, as of the given current year.
func (p Pattern) finalYear(currentYear int) int {
	if p.FinalRegistrationYear != nil {
		return *p.FinalRegistrationYear
	}
	if len(p.Windows) == 0 {
		return currentYear
	}
	minOffset := p.Windows[0].OpeningDate.YearOffset
	for _, w := range p.Windows[1:] {
		if w.OpeningDate.YearOffset < minOffset {
			minOffset = w.OpeningDate.YearOffset
		}
	}
	return currentYear - minOffset
}

/*
acceptance.go - Acceptance-year window resolution for PRNs/PERNs

PURPOSE:
  Decides which compliance year(s) a note may currently be accepted
  against. Most notes are only acceptable during their own obligation
  year. December-waste notes get a grace window: until 1 February of the
  following year the acceptor may attribute them to either year.

RULES (in evaluation order):
  1. Unparsable obligation year        -> no years
  2. Obligation year in the future     -> no years (should not occur)
  3. Not December waste                -> [year] while it is the current
                                          compliance year, else expired
  4. December waste, 2025 cohort       -> [current compliance year] only;
     the 2025 notes never offer the dual-year choice because January 2026
     already resolves to compliance year 2025
  5. December waste, before 1 Feb Y+1  -> [Y, Y+1] (acceptor chooses)
  6. December waste, after the window  -> [Y+1] while Y+1 is current,
                                          else expired

  The 2025-cohort override (rule 4) must run before the generic window
  check (rule 5); swapping them would hand that cohort a dual-year choice
  it is not entitled to.

SEE ALSO:
  - types.go: Record and status normalization
  - compliance/year.go: Compliance year resolution
*/
package prn

import (
	"strconv"
	"strings"
	"time"

	"github.com/packlane/compliance-engine/compliance"
)

// decemberWasteWindowEnd is when the dual-year choice for a December-waste
// note of obligation year y closes: 1 February of the following year.
func decemberWasteWindowEnd(year int) time.Time {
	return time.Date(year+1, time.February, 1, 0, 0, 0, 0, time.UTC)
}

// AvailableAcceptanceYears returns the compliance years the note may
// currently be accepted against: zero entries (nothing to do), one entry,
// or two entries when the acceptor may choose between adjacent years.
func AvailableAcceptanceYears(obligationYear string, decemberWaste bool, now time.Time) []int {
	year, err := strconv.Atoi(strings.TrimSpace(obligationYear))
	if err != nil {
		return nil
	}

	current := compliance.YearAt(now)
	if year > current {
		return nil
	}

	if !decemberWaste {
		if year == current {
			return []int{year}
		}
		return nil
	}

	// 2025 cohort: single-year acceptance in both 2025 and 2026.
	if year == 2025 && (current == 2025 || current == 2026) {
		return []int{current}
	}

	if now.UTC().Before(decemberWasteWindowEnd(year)) {
		return []int{year, year + 1}
	}

	if year+1 == current {
		return []int{current}
	}

	return nil
}

// AcceptanceYears is the Record-level convenience over
// AvailableAcceptanceYears.
func (r Record) AcceptanceYears(now time.Time) []int {
	return AvailableAcceptanceYears(r.ObligationYear, r.IsDecemberWaste, now)
}

/*
Package prn computes derived state for Packaging Recovery Notes (PRN) and
Packaging Export Recovery Notes (PERN).

PURPOSE:
  A producer meets its recycling obligation by accepting PRNs/PERNs issued
  against a given obligation year. This package owns two things:

  1. The read model for a note as returned by the downstream PRN service,
     including normalization of its loosely-typed legacy status vocabulary.
  2. The acceptance-window rule: which compliance year(s) a note may
     currently be accepted against (see acceptance.go).

  Notes are owned by the downstream service. Nothing here mutates or
  persists them; every field computed in this package is derived per read.

KEY CONCEPTS IN THIS FILE (types.go):
  - Status: normalized note status (awaiting acceptance, accepted, ...)
  - Record: the per-note read model handed in by the API client

SEE ALSO:
  - acceptance.go: Acceptance-year window resolution
  - compliance/year.go: Compliance year used to bound the window
*/
package prn

import "strings"

// =============================================================================
// STATUS - Normalized note status
// =============================================================================

// Status is the normalized lifecycle status of a note.
type Status string

const (
	StatusAwaitingAcceptance Status = "AwaitingAcceptance"
	StatusAccepted           Status = "Accepted"
	StatusRejected           Status = "Rejected"
	StatusCancelled          Status = "Cancelled"
	StatusUnknown            Status = "Unknown"
)

// NormalizeStatus maps the legacy source vocabulary onto Status. The
// downstream service still emits spaced, hyphenated, and US-spelled
// variants; unknown values normalize to StatusUnknown rather than failing
// a page render.
func NormalizeStatus(raw string) Status {
	key := strings.ToUpper(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(raw)))
	switch key {
	case "AWAITINGACCEPTANCE", "EVAWACCEP":
		return StatusAwaitingAcceptance
	case "ACCEPTED", "EVACCEP":
		return StatusAccepted
	case "REJECTED", "EVREJECT":
		return StatusRejected
	case "CANCELLED", "CANCELED", "EVCANCEL":
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// =============================================================================
// RECORD - Per-note read model
// =============================================================================

// Record is a single note as assembled from the downstream PRN service.
// ObligationYear is kept as the raw string the service returns; an
// unparsable value yields no acceptance years rather than an error.
type Record struct {
	Number          string
	ObligationYear  string
	IsDecemberWaste bool
	Status          Status
	IssuedBy        string
	Tonnage         int
}

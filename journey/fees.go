/*
fees.go - Fee-calculation read model

PURPOSE:
  Holds the result of the downstream fee calculation for a session. The
  presence of a fee summary doubles as the signal that the uploaded file
  has been ingested by the downstream processing pipeline: fees can only
  be calculated once the file has reached it.

  Amounts are pence-precise money and use decimal arithmetic throughout;
  float64 is never acceptable for fee math.

SEE ALSO:
  - registration.go / resubmission.go: Consume FileReachedSynapse
  - api/handlers.go: Attaches summaries fetched by controllers
*/
package journey

import "github.com/shopspring/decimal"

// FeeSummary is the downstream fee-calculation result for one application.
type FeeSummary struct {
	TotalFee           decimal.Decimal
	PreviousPayments   decimal.Decimal
	OutstandingPayment decimal.Decimal
}

// Outstanding reports whether any balance remains to be paid.
func (f FeeSummary) Outstanding() bool {
	return f.OutstandingPayment.IsPositive()
}

// NewFeeSummary computes the outstanding balance from the total and what
// has already been paid. A fully covered fee yields a zero outstanding
// amount, never a negative one.
func NewFeeSummary(total, previous decimal.Decimal) FeeSummary {
	outstanding := total.Sub(previous)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return FeeSummary{
		TotalFee:           total,
		PreviousPayments:   previous,
		OutstandingPayment: outstanding,
	}
}

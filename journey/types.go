/*
Package journey holds the per-session fact records for the registration
and packaging-resubmission journeys, and derives the three-stage task-list
status from them.

PURPOSE:
  Controllers fetch facts from the downstream submission and payment
  services and write them onto a session record. The task list shown to
  the user (file upload -> payment -> additional details) is never stored:
  each stage's status is recomputed from the facts on every read, in a
  strict triangular dependency. A later stage can only be Completed when
  every stage before it is Completed.

TWO ENGINES, NOT ONE:
  Registration and resubmission share the shape of this logic but not the
  rules. The divergences are intentional business policy (see
  registration.go and resubmission.go) and the two machines are kept as
  separate, independently testable implementations. Do not unify them
  behind branching flags.

KEY CONCEPTS IN THIS FILE (types.go):
  - ApplicationStatus: where the application sits with the regulator
  - TaskListStatus: derived per-stage status
  - PaymentMethod: closed set of accepted fee payment methods

SEE ALSO:
  - registration.go: Registration task-list rules
  - resubmission.go: Resubmission task-list rules
  - fees.go: Fee-calculation read model
*/
package journey

// =============================================================================
// APPLICATION STATUS - Facts from the submission service
// =============================================================================

// ApplicationStatus is the downstream state of the application.
type ApplicationStatus string

const (
	NotStarted                      ApplicationStatus = "NotStarted"
	FileUploaded                    ApplicationStatus = "FileUploaded"
	SubmittedAndHasRecentFileUpload ApplicationStatus = "SubmittedAndHasRecentFileUpload"
	SubmittedToRegulator            ApplicationStatus = "SubmittedToRegulator"
	AcceptedByRegulator             ApplicationStatus = "AcceptedByRegulator"
	RejectedByRegulator             ApplicationStatus = "RejectedByRegulator"
	ApprovedByRegulator             ApplicationStatus = "ApprovedByRegulator"
	CancelledByRegulator            ApplicationStatus = "CancelledByRegulator"
	QueriedByRegulator              ApplicationStatus = "QueriedByRegulator"
)

// =============================================================================
// TASK LIST STATUS - Derived, never stored
// =============================================================================

// TaskListStatus is the per-stage status rendered on the task list.
type TaskListStatus string

const (
	TaskNotStarted     TaskListStatus = "NotStarted"
	TaskPending        TaskListStatus = "Pending"
	TaskCanNotStartYet TaskListStatus = "CanNotStartYet"
	TaskCompleted      TaskListStatus = "Completed"
)

// =============================================================================
// PAYMENT METHODS
// =============================================================================

// PaymentMethod records how the registration fee was settled.
type PaymentMethod string

const (
	PayByPhone           PaymentMethod = "PayByPhone"
	PayOnline            PaymentMethod = "PayOnline"
	PayByBankTransfer    PaymentMethod = "PayByBankTransfer"
	NoOutstandingPayment PaymentMethod = "No-Outstanding-Payment"
)

// settledMethod reports whether the method is one of the actively paid
// channels. NoOutstandingPayment is handled separately: it only counts as
// paid on the registration journey.
func settledMethod(m PaymentMethod) bool {
	switch m {
	case PayByPhone, PayOnline, PayByBankTransfer:
		return true
	default:
		return false
	}
}

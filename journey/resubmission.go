/*
resubmission.go - Packaging resubmission session facts and task-list rules

PURPOSE:
  PackagingResubmissionApplicationSession carries the facts for a
  producer's packaging-data resubmission and derives its task list.

DIVERGENCE FROM REGISTRATION (intentional, do not harmonize):
  - A resubmission knocked back by the regulator (cancelled, queried,
    rejected) stays in play: the file upload stage reads Completed or
    Pending off the downstream-reached flag, because resubmission is
    exactly the re-entry path after a rejection. Registration resets the
    stage to NotStarted instead.
  - Accepted/Approved do not short-circuit the file upload stage here.
  - NoOutstandingPayment does not settle the resubmission fee; only the
    active payment channels count.
  - The additional-details stage is gated as CanNotStartYet only while
    payment reads NotStarted (registration also gates on CanNotStartYet).

  The knock-back asymmetry matches how the regulator treats the two
  journeys today; flagged with product in case that ever changes.

SEE ALSO:
  - registration.go: The registration rules this file diverges from
  - types.go: Shared enums
*/
package journey

import "time"

// PackagingResubmissionApplicationSession is the per-session fact record
// for the resubmission journey.
type PackagingResubmissionApplicationSession struct {
	ApplicationStatus ApplicationStatus

	// FileReachedSynapse is true once the fee-calculation results exist
	// for the resubmitted file.
	FileReachedSynapse bool

	FeeSummary       *FeeSummary
	FeePaymentMethod *PaymentMethod

	ApplicationSubmittedDate    *time.Time
	ApplicationSubmittedComment *string

	RegistrationYear int
}

// AttachFeeSummary records the downstream fee calculation and marks the
// resubmitted file as ingested. Unlike registration, a zero outstanding
// amount does not settle the payment stage.
func (s *PackagingResubmissionApplicationSession) AttachFeeSummary(f FeeSummary) {
	s.FeeSummary = &f
	s.FileReachedSynapse = true
}

// FileUploadStatus derives the first task-list stage.
func (s *PackagingResubmissionApplicationSession) FileUploadStatus() TaskListStatus {
	switch s.ApplicationStatus {
	case SubmittedToRegulator:
		if s.FileReachedSynapse {
			return TaskCompleted
		}
		return TaskPending
	case CancelledByRegulator, QueriedByRegulator, RejectedByRegulator:
		// Re-entry path: a knocked-back resubmission keeps its progress.
		if s.FileReachedSynapse {
			return TaskCompleted
		}
		return TaskPending
	}

	if !s.FileReachedSynapse &&
		(s.ApplicationStatus == FileUploaded || s.ApplicationStatus == SubmittedAndHasRecentFileUpload) {
		return TaskPending
	}
	return TaskNotStarted
}

// feePaid reports whether the resubmission fee is settled via one of the
// active payment channels.
func (s *PackagingResubmissionApplicationSession) feePaid() bool {
	return s.FeePaymentMethod != nil && settledMethod(*s.FeePaymentMethod)
}

// PaymentViewStatus derives the second task-list stage.
func (s *PackagingResubmissionApplicationSession) PaymentViewStatus() TaskListStatus {
	switch s.FileUploadStatus() {
	case TaskNotStarted, TaskPending:
		return TaskCanNotStartYet
	}
	if s.feePaid() {
		return TaskCompleted
	}
	return TaskNotStarted
}

// AdditionalDetailsStatus derives the final task-list stage. Completion
// requires the submission comment recorded alongside the resubmission.
func (s *PackagingResubmissionApplicationSession) AdditionalDetailsStatus() TaskListStatus {
	switch s.PaymentViewStatus() {
	case TaskCompleted:
		if s.ApplicationSubmittedComment != nil && *s.ApplicationSubmittedComment != "" {
			return TaskCompleted
		}
		return TaskNotStarted
	case TaskNotStarted:
		return TaskCanNotStartYet
	default:
		return TaskNotStarted
	}
}

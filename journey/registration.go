/*
registration.go - Registration journey session facts and task-list rules

PURPOSE:
  RegistrationApplicationSession carries the facts the controller layer
  assembles for a producer's registration application, and derives the
  three task-list stages from them.

RULES (file upload stage):
  - Cancelled/Queried/Rejected by the regulator resets the stage to
    NotStarted: a registration application knocked back by the regulator
    starts over. (The resubmission journey deliberately differs - see
    resubmission.go.)
  - SubmittedToRegulator is Completed once the file has reached the
    downstream pipeline, Pending until then.
  - Accepted/Approved by the regulator is Completed outright.
  - A fresh upload that has not reached the pipeline yet is Pending.

RULES (payment stage):
  Gated on file upload being Completed. The fee counts as paid via any of
  the active payment channels, or - registration only - when the fee
  calculation found nothing outstanding.

RULES (additional details stage):
  Gated on payment being Completed, and Completed only once the
  application has been submitted (submission date recorded).

SEE ALSO:
  - types.go: Status enums and payment methods
  - resubmission.go: The divergent resubmission rules
*/
package journey

import "time"

// RegistrationApplicationSession is the per-session fact record for the
// registration journey. Controllers mutate it as downstream facts arrive;
// it lives only as long as the user's session.
type RegistrationApplicationSession struct {
	ApplicationStatus ApplicationStatus

	// FileReachedSynapse is true once the fee-calculation results exist,
	// which implies the uploaded file was ingested downstream.
	FileReachedSynapse bool

	FeeSummary       *FeeSummary
	FeePaymentMethod *PaymentMethod

	ApplicationSubmittedDate    *time.Time
	ApplicationSubmittedComment *string

	RegistrationYear int
	IsResubmission   bool
}

// AttachFeeSummary records the downstream fee calculation. Its presence
// is what marks the file as having reached the processing pipeline, and a
// fully covered fee settles the payment stage without a new payment.
func (s *RegistrationApplicationSession) AttachFeeSummary(f FeeSummary) {
	s.FeeSummary = &f
	s.FileReachedSynapse = true
	if !f.Outstanding() && s.FeePaymentMethod == nil {
		m := NoOutstandingPayment
		s.FeePaymentMethod = &m
	}
}

// FileUploadStatus derives the first task-list stage.
func (s *RegistrationApplicationSession) FileUploadStatus() TaskListStatus {
	switch s.ApplicationStatus {
	case CancelledByRegulator, QueriedByRegulator, RejectedByRegulator:
		return TaskNotStarted
	case SubmittedToRegulator:
		if s.FileReachedSynapse {
			return TaskCompleted
		}
		return TaskPending
	case AcceptedByRegulator, ApprovedByRegulator:
		return TaskCompleted
	}

	if !s.FileReachedSynapse &&
		(s.ApplicationStatus == FileUploaded || s.ApplicationStatus == SubmittedAndHasRecentFileUpload) {
		return TaskPending
	}
	return TaskNotStarted
}

// feePaid reports whether the registration fee is settled. Registration
// additionally accepts NoOutstandingPayment.
func (s *RegistrationApplicationSession) feePaid() bool {
	if s.FeePaymentMethod == nil {
		return false
	}
	return settledMethod(*s.FeePaymentMethod) || *s.FeePaymentMethod == NoOutstandingPayment
}

// PaymentViewStatus derives the second task-list stage.
func (s *RegistrationApplicationSession) PaymentViewStatus() TaskListStatus {
	switch s.FileUploadStatus() {
	case TaskNotStarted, TaskPending:
		return TaskCanNotStartYet
	}
	if s.feePaid() {
		return TaskCompleted
	}
	return TaskNotStarted
}

// AdditionalDetailsStatus derives the final task-list stage.
func (s *RegistrationApplicationSession) AdditionalDetailsStatus() TaskListStatus {
	switch s.PaymentViewStatus() {
	case TaskCompleted:
		if s.ApplicationSubmittedDate != nil {
			return TaskCompleted
		}
		return TaskNotStarted
	case TaskNotStarted, TaskCanNotStartYet:
		return TaskCanNotStartYet
	default:
		return TaskNotStarted
	}
}

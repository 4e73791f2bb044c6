package journey_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/packlane/compliance-engine/journey"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func methodPtr(m journey.PaymentMethod) *journey.PaymentMethod { return &m }

func timePtr(t time.Time) *time.Time { return &t }

func paidRegistration() *journey.RegistrationApplicationSession {
	return &journey.RegistrationApplicationSession{
		ApplicationStatus:  journey.SubmittedToRegulator,
		FileReachedSynapse: true,
		FeePaymentMethod:   methodPtr(journey.PayOnline),
	}
}

// =============================================================================
// FILE UPLOAD STAGE
// =============================================================================

func TestRegistration_FileUpload_RegulatorKnockBack_ResetsToNotStarted(t *testing.T) {
	// GIVEN: The regulator cancelled, queried, or rejected the application
	// THEN: The upload stage reads NotStarted even if the file had reached
	//       the downstream pipeline - registration starts over

	for _, status := range []journey.ApplicationStatus{
		journey.CancelledByRegulator, journey.QueriedByRegulator, journey.RejectedByRegulator,
	} {
		s := &journey.RegistrationApplicationSession{
			ApplicationStatus:  status,
			FileReachedSynapse: true,
		}
		if got := s.FileUploadStatus(); got != journey.TaskNotStarted {
			t.Errorf("%s: FileUploadStatus = %s, want NotStarted", status, got)
		}
	}
}

func TestRegistration_FileUpload_Submitted(t *testing.T) {
	s := &journey.RegistrationApplicationSession{ApplicationStatus: journey.SubmittedToRegulator}

	if got := s.FileUploadStatus(); got != journey.TaskPending {
		t.Errorf("not reached: FileUploadStatus = %s, want Pending", got)
	}
	s.FileReachedSynapse = true
	if got := s.FileUploadStatus(); got != journey.TaskCompleted {
		t.Errorf("reached: FileUploadStatus = %s, want Completed", got)
	}
}

func TestRegistration_FileUpload_AcceptedOrApproved_Completed(t *testing.T) {
	for _, status := range []journey.ApplicationStatus{
		journey.AcceptedByRegulator, journey.ApprovedByRegulator,
	} {
		s := &journey.RegistrationApplicationSession{ApplicationStatus: status}
		if got := s.FileUploadStatus(); got != journey.TaskCompleted {
			t.Errorf("%s: FileUploadStatus = %s, want Completed", status, got)
		}
	}
}

func TestRegistration_FileUpload_FreshUpload_Pending(t *testing.T) {
	for _, status := range []journey.ApplicationStatus{
		journey.FileUploaded, journey.SubmittedAndHasRecentFileUpload,
	} {
		s := &journey.RegistrationApplicationSession{ApplicationStatus: status}
		if got := s.FileUploadStatus(); got != journey.TaskPending {
			t.Errorf("%s: FileUploadStatus = %s, want Pending", status, got)
		}
	}
}

func TestRegistration_FileUpload_NotStartedByDefault(t *testing.T) {
	s := &journey.RegistrationApplicationSession{ApplicationStatus: journey.NotStarted}
	if got := s.FileUploadStatus(); got != journey.TaskNotStarted {
		t.Errorf("FileUploadStatus = %s, want NotStarted", got)
	}
}

// =============================================================================
// PAYMENT STAGE
// =============================================================================

func TestRegistration_Payment_GatedOnFileUpload(t *testing.T) {
	// GIVEN: Upload stage NotStarted or Pending
	// THEN: Payment cannot start yet

	s := &journey.RegistrationApplicationSession{ApplicationStatus: journey.FileUploaded}
	if got := s.PaymentViewStatus(); got != journey.TaskCanNotStartYet {
		t.Errorf("PaymentViewStatus = %s, want CanNotStartYet", got)
	}
}

func TestRegistration_Payment_CompletedUploadUnpaid_NotStarted(t *testing.T) {
	s := &journey.RegistrationApplicationSession{
		ApplicationStatus:  journey.SubmittedToRegulator,
		FileReachedSynapse: true,
	}
	if got := s.PaymentViewStatus(); got != journey.TaskNotStarted {
		t.Errorf("PaymentViewStatus = %s, want NotStarted", got)
	}
}

func TestRegistration_Payment_PaidMethods(t *testing.T) {
	// GIVEN: Upload Completed
	// THEN: Any allow-listed method settles the stage, including
	//       No-Outstanding-Payment (registration only)

	for _, m := range []journey.PaymentMethod{
		journey.PayByPhone, journey.PayOnline, journey.PayByBankTransfer, journey.NoOutstandingPayment,
	} {
		s := &journey.RegistrationApplicationSession{
			ApplicationStatus:  journey.SubmittedToRegulator,
			FileReachedSynapse: true,
			FeePaymentMethod:   methodPtr(m),
		}
		if got := s.PaymentViewStatus(); got != journey.TaskCompleted {
			t.Errorf("%s: PaymentViewStatus = %s, want Completed", m, got)
		}
	}
}

// =============================================================================
// ADDITIONAL DETAILS STAGE AND MONOTONIC GATING
// =============================================================================

func TestRegistration_AdditionalDetails_Gating(t *testing.T) {
	// GIVEN: Upload Completed, fee unpaid
	// THEN: Payment NotStarted and additional details CanNotStartYet

	s := &journey.RegistrationApplicationSession{
		ApplicationStatus:  journey.SubmittedToRegulator,
		FileReachedSynapse: true,
	}
	if got := s.PaymentViewStatus(); got != journey.TaskNotStarted {
		t.Fatalf("PaymentViewStatus = %s, want NotStarted", got)
	}
	if got := s.AdditionalDetailsStatus(); got != journey.TaskCanNotStartYet {
		t.Errorf("AdditionalDetailsStatus = %s, want CanNotStartYet", got)
	}
}

func TestRegistration_AdditionalDetails_CompletedOnlyAfterSubmission(t *testing.T) {
	s := paidRegistration()

	if got := s.AdditionalDetailsStatus(); got != journey.TaskNotStarted {
		t.Errorf("no submission date: AdditionalDetailsStatus = %s, want NotStarted", got)
	}

	s.ApplicationSubmittedDate = timePtr(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
	if got := s.AdditionalDetailsStatus(); got != journey.TaskCompleted {
		t.Errorf("submitted: AdditionalDetailsStatus = %s, want Completed", got)
	}
}

func TestRegistration_NoStageSkipsItsPredecessor(t *testing.T) {
	// GIVEN: Every combination of application status, synapse flag,
	//        payment method, and submission date
	// THEN: A later stage is Completed only if the one before it is

	statuses := []journey.ApplicationStatus{
		journey.NotStarted, journey.FileUploaded, journey.SubmittedAndHasRecentFileUpload,
		journey.SubmittedToRegulator, journey.AcceptedByRegulator, journey.RejectedByRegulator,
		journey.ApprovedByRegulator, journey.CancelledByRegulator, journey.QueriedByRegulator,
	}
	methods := []*journey.PaymentMethod{nil, methodPtr(journey.PayOnline), methodPtr(journey.NoOutstandingPayment)}
	dates := []*time.Time{nil, timePtr(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))}

	for _, status := range statuses {
		for _, reached := range []bool{false, true} {
			for _, method := range methods {
				for _, date := range dates {
					s := &journey.RegistrationApplicationSession{
						ApplicationStatus:        status,
						FileReachedSynapse:       reached,
						FeePaymentMethod:         method,
						ApplicationSubmittedDate: date,
					}
					if s.PaymentViewStatus() == journey.TaskCompleted && s.FileUploadStatus() != journey.TaskCompleted {
						t.Errorf("%s reached=%v: payment completed before upload", status, reached)
					}
					if s.AdditionalDetailsStatus() == journey.TaskCompleted && s.PaymentViewStatus() != journey.TaskCompleted {
						t.Errorf("%s reached=%v: details completed before payment", status, reached)
					}
				}
			}
		}
	}
}

// =============================================================================
// FEE SUMMARY INTEGRATION
// =============================================================================

func TestRegistration_AttachFeeSummary_MarksSynapseAndSettlesZeroBalance(t *testing.T) {
	// GIVEN: A fee calculation with nothing outstanding
	// WHEN: Attached to a submitted application
	// THEN: The file counts as ingested and the payment stage completes
	//       without a new payment

	s := &journey.RegistrationApplicationSession{ApplicationStatus: journey.SubmittedToRegulator}
	s.AttachFeeSummary(journey.NewFeeSummary(
		decimal.RequireFromString("120.50"),
		decimal.RequireFromString("120.50"),
	))

	if !s.FileReachedSynapse {
		t.Error("fee summary should mark the file as reached")
	}
	if got := s.FileUploadStatus(); got != journey.TaskCompleted {
		t.Errorf("FileUploadStatus = %s, want Completed", got)
	}
	if got := s.PaymentViewStatus(); got != journey.TaskCompleted {
		t.Errorf("PaymentViewStatus = %s, want Completed", got)
	}
}

func TestRegistration_AttachFeeSummary_OutstandingBalanceStaysUnpaid(t *testing.T) {
	s := &journey.RegistrationApplicationSession{ApplicationStatus: journey.SubmittedToRegulator}
	s.AttachFeeSummary(journey.NewFeeSummary(
		decimal.RequireFromString("120.50"),
		decimal.RequireFromString("20.00"),
	))

	if got := s.PaymentViewStatus(); got != journey.TaskNotStarted {
		t.Errorf("PaymentViewStatus = %s, want NotStarted", got)
	}
	if !s.FeeSummary.Outstanding() {
		t.Error("expected an outstanding balance")
	}
}

func TestNewFeeSummary_NeverNegativeOutstanding(t *testing.T) {
	f := journey.NewFeeSummary(
		decimal.RequireFromString("100"),
		decimal.RequireFromString("150"),
	)
	if !f.OutstandingPayment.IsZero() {
		t.Errorf("OutstandingPayment = %s, want 0", f.OutstandingPayment)
	}
}

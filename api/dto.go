/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY FIELDS:
  Fee amounts travel as decimal strings ("120.50"), never JSON numbers,
  to keep pence precision across the wire.

SEE ALSO:
  - handlers.go: Uses these types
  - journey: The session fact records behind them
*/
package api

import (
	"time"

	"github.com/packlane/compliance-engine/journey"
	"github.com/packlane/compliance-engine/regperiod"
)

// =============================================================================
// WINDOW AND PERIOD TYPES
// =============================================================================

// WindowDTO represents one registration window and its current status.
type WindowDTO struct {
	WindowType       string `json:"window_type"`
	Journey          string `json:"journey,omitempty"`
	IsCso            bool   `json:"is_cso"`
	RegistrationYear int    `json:"registration_year"`
	OpeningDate      string `json:"opening_date"`
	Deadline         string `json:"deadline"`
	ClosingDate      string `json:"closing_date"`
	Status           string `json:"status"`
	IsLate           bool   `json:"is_late"`
}

func windowDTO(w regperiod.Window, now time.Time) WindowDTO {
	dto := WindowDTO{
		WindowType:       string(w.Type),
		IsCso:            w.IsCso,
		RegistrationYear: w.RegistrationYear,
		OpeningDate:      w.OpeningDate.Format(time.RFC3339),
		Deadline:         w.Deadline.Format(time.RFC3339),
		ClosingDate:      w.ClosingDate.Format(time.RFC3339),
		Status:           string(w.StatusAt(now)),
		IsLate:           w.IsLateAt(now),
	}
	if w.Journey != nil {
		dto.Journey = string(*w.Journey)
	}
	return dto
}

// ComplianceYearDTO carries the resolved compliance year.
type ComplianceYearDTO struct {
	Year int `json:"year"`
}

// AcceptanceYearsDTO lists the years a note may be accepted against.
type AcceptanceYearsDTO struct {
	ObligationYear  string `json:"obligation_year"`
	IsDecemberWaste bool   `json:"is_december_waste"`
	Years           []int  `json:"years"`
}

// =============================================================================
// SESSION TYPES
// =============================================================================

// CreateSessionRequest starts a session for an organisation.
type CreateSessionRequest struct {
	OrganisationID string `json:"organisation_id"`
}

// SessionDTO represents a session envelope.
type SessionDTO struct {
	ID             string `json:"id"`
	OrganisationID string `json:"organisation_id"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// =============================================================================
// JOURNEY FACT UPDATES
// =============================================================================

// FeeSummaryRequest carries fee-calculation results as decimal strings.
type FeeSummaryRequest struct {
	TotalFee         string `json:"total_fee"`
	PreviousPayments string `json:"previous_payments"`
}

// UpdateJourneyRequest applies downstream facts to a journey record.
// Every field is optional; absent fields leave the session untouched.
type UpdateJourneyRequest struct {
	ApplicationStatus *string            `json:"application_status,omitempty"`
	RegistrationYear  *int               `json:"registration_year,omitempty"`
	FeeSummary        *FeeSummaryRequest `json:"fee_summary,omitempty"`
	FeePaymentMethod  *string            `json:"fee_payment_method,omitempty"`
	SubmittedDate     *string            `json:"submitted_date,omitempty"`
	SubmittedComment  *string            `json:"submitted_comment,omitempty"`
}

// TaskListDTO is the derived three-stage task list.
type TaskListDTO struct {
	FileUpload        string `json:"file_upload"`
	Payment           string `json:"payment"`
	AdditionalDetails string `json:"additional_details"`
}

func registrationTaskList(s *journey.RegistrationApplicationSession) TaskListDTO {
	return TaskListDTO{
		FileUpload:        string(s.FileUploadStatus()),
		Payment:           string(s.PaymentViewStatus()),
		AdditionalDetails: string(s.AdditionalDetailsStatus()),
	}
}

func resubmissionTaskList(s *journey.PackagingResubmissionApplicationSession) TaskListDTO {
	return TaskListDTO{
		FileUpload:        string(s.FileUploadStatus()),
		Payment:           string(s.PaymentViewStatus()),
		AdditionalDetails: string(s.AdditionalDetailsStatus()),
	}
}

/*
handlers.go - HTTP API handlers for the compliance engine

PURPOSE:
  Exposes the registration-period, PRN acceptance, and task-list engines
  via REST. Handles HTTP request/response, JSON serialization, and
  delegates to domain logic.

ENDPOINTS:
  Periods:
    GET    /api/compliance-year                 Current compliance year
    GET    /api/registration/windows            Active windows (by journey)

  PRNs:
    GET    /api/prns/acceptance-years           Years a note may be accepted against

  Sessions:
    POST   /api/sessions                        Start a session
    GET    /api/sessions/{id}                   Session envelope
    DELETE /api/sessions/{id}                   Discard a session
    PUT    /api/sessions/{id}/registration      Apply registration facts
    GET    /api/sessions/{id}/registration/task-list
    PUT    /api/sessions/{id}/resubmission      Apply resubmission facts
    GET    /api/sessions/{id}/resubmission/task-list

ARCHITECTURE:
  Handler struct holds all dependencies: session store, window provider,
  clock, logger. Task-list statuses are derived on every read - handlers
  never persist them.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Session not found
  - 500: Internal errors (also logged)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/packlane/compliance-engine/clock"
	"github.com/packlane/compliance-engine/compliance"
	"github.com/packlane/compliance-engine/journey"
	"github.com/packlane/compliance-engine/prnote"
	"github.com/packlane/compliance-engine/regperiod"
	"github.com/packlane/compliance-engine/session"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Sessions session.Store
	Windows  *regperiod.Provider
	Clock    clock.Clock
	Log      *zap.Logger
}

// NewHandler creates a new handler.
func NewHandler(sessions session.Store, windows *regperiod.Provider, c clock.Clock, log *zap.Logger) *Handler {
	return &Handler{Sessions: sessions, Windows: windows, Clock: c, Log: log}
}

// =============================================================================
// PERIOD HANDLERS
// =============================================================================

// GetComplianceYear returns the current compliance year.
func (h *Handler) GetComplianceYear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ComplianceYearDTO{Year: compliance.Year(h.Clock)})
}

// ListWindows returns the active registration windows for a journey side.
// ?journey=cso selects compliance-scheme windows, anything else (or the
// default ?journey=direct) selects producer windows.
func (h *Handler) ListWindows(w http.ResponseWriter, r *http.Request) {
	isCso := r.URL.Query().Get("journey") == "cso"

	windows, err := h.Windows.ActiveWindows(isCso)
	if err != nil {
		h.Log.Error("window expansion failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to resolve registration windows", err)
		return
	}

	now := h.Clock.Now()
	dtos := make([]WindowDTO, len(windows))
	for i, win := range windows {
		dtos[i] = windowDTO(win, now)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PRN HANDLERS
// =============================================================================

// GetAcceptanceYears resolves the acceptance window for a note.
// Unparsable obligation years yield an empty list, not an error - the
// value originates from loosely-typed upstream data.
func (h *Handler) GetAcceptanceYears(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	obligationYear := q.Get("obligation_year")
	decemberWaste := q.Get("december_waste") == "true"

	years := prn.AvailableAcceptanceYears(obligationYear, decemberWaste, h.Clock.Now())
	if years == nil {
		years = []int{}
	}

	writeJSON(w, http.StatusOK, AcceptanceYearsDTO{
		ObligationYear:  obligationYear,
		IsDecemberWaste: decemberWaste,
		Years:           years,
	})
}

// =============================================================================
// SESSION HANDLERS
// =============================================================================

// CreateSession starts an empty session for an organisation.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.OrganisationID == "" {
		writeError(w, http.StatusBadRequest, "organisation_id is required", nil)
		return
	}

	sess := session.New(req.OrganisationID, h.Clock.Now())
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionDTO(sess))
}

// GetSession returns the session envelope.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionDTO(sess))
}

// DeleteSession discards a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.Log.Error("session delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateRegistration applies downstream facts to the registration journey.
func (h *Handler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req UpdateJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if sess.Registration == nil {
		sess.Registration = &journey.RegistrationApplicationSession{
			ApplicationStatus: journey.NotStarted,
		}
	}
	reg := sess.Registration

	if req.ApplicationStatus != nil {
		status, err := parseApplicationStatus(*req.ApplicationStatus)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown application status", err)
			return
		}
		reg.ApplicationStatus = status
	}
	if req.RegistrationYear != nil {
		reg.RegistrationYear = *req.RegistrationYear
	}
	if req.FeeSummary != nil {
		summary, err := parseFeeSummary(*req.FeeSummary)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fee summary", err)
			return
		}
		reg.AttachFeeSummary(summary)
	}
	if req.FeePaymentMethod != nil {
		method, err := parsePaymentMethod(*req.FeePaymentMethod)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown payment method", err)
			return
		}
		reg.FeePaymentMethod = &method
	}
	if req.SubmittedDate != nil {
		at, err := time.Parse(time.RFC3339, *req.SubmittedDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid submitted_date", err)
			return
		}
		reg.ApplicationSubmittedDate = &at
	}
	if req.SubmittedComment != nil {
		reg.ApplicationSubmittedComment = req.SubmittedComment
	}

	if !h.saveSession(w, r, sess) {
		return
	}
	writeJSON(w, http.StatusOK, registrationTaskList(reg))
}

// GetRegistrationTaskList derives the registration task list.
func (h *Handler) GetRegistrationTaskList(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	reg := sess.Registration
	if reg == nil {
		reg = &journey.RegistrationApplicationSession{ApplicationStatus: journey.NotStarted}
	}
	writeJSON(w, http.StatusOK, registrationTaskList(reg))
}

// UpdateResubmission applies downstream facts to the resubmission journey.
func (h *Handler) UpdateResubmission(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req UpdateJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if sess.Resubmission == nil {
		sess.Resubmission = &journey.PackagingResubmissionApplicationSession{
			ApplicationStatus: journey.NotStarted,
		}
	}
	resub := sess.Resubmission

	if req.ApplicationStatus != nil {
		status, err := parseApplicationStatus(*req.ApplicationStatus)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown application status", err)
			return
		}
		resub.ApplicationStatus = status
	}
	if req.RegistrationYear != nil {
		resub.RegistrationYear = *req.RegistrationYear
	}
	if req.FeeSummary != nil {
		summary, err := parseFeeSummary(*req.FeeSummary)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fee summary", err)
			return
		}
		resub.AttachFeeSummary(summary)
	}
	if req.FeePaymentMethod != nil {
		method, err := parsePaymentMethod(*req.FeePaymentMethod)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown payment method", err)
			return
		}
		resub.FeePaymentMethod = &method
	}
	if req.SubmittedDate != nil {
		at, err := time.Parse(time.RFC3339, *req.SubmittedDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid submitted_date", err)
			return
		}
		resub.ApplicationSubmittedDate = &at
	}
	if req.SubmittedComment != nil {
		resub.ApplicationSubmittedComment = req.SubmittedComment
	}

	if !h.saveSession(w, r, sess) {
		return
	}
	writeJSON(w, http.StatusOK, resubmissionTaskList(resub))
}

// GetResubmissionTaskList derives the resubmission task list.
func (h *Handler) GetResubmissionTaskList(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	resub := sess.Resubmission
	if resub == nil {
		resub = &journey.PackagingResubmissionApplicationSession{ApplicationStatus: journey.NotStarted}
	}
	writeJSON(w, http.StatusOK, resubmissionTaskList(resub))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := h.Sessions.Get(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Session not found", nil)
		return nil, false
	}
	if err != nil {
		h.Log.Error("session load failed", zap.String("session_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load session", err)
		return nil, false
	}
	return sess, true
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	sess.UpdatedAt = h.Clock.Now()
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.Log.Error("session save failed", zap.String("session_id", sess.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save session", err)
		return false
	}
	return true
}

func sessionDTO(s *session.Session) SessionDTO {
	return SessionDTO{
		ID:             s.ID,
		OrganisationID: s.OrganisationID,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

func parseApplicationStatus(raw string) (journey.ApplicationStatus, error) {
	status := journey.ApplicationStatus(raw)
	switch status {
	case journey.NotStarted, journey.FileUploaded, journey.SubmittedAndHasRecentFileUpload,
		journey.SubmittedToRegulator, journey.AcceptedByRegulator, journey.RejectedByRegulator,
		journey.ApprovedByRegulator, journey.CancelledByRegulator, journey.QueriedByRegulator:
		return status, nil
	}
	return "", errors.New("unknown application status: " + raw)
}

func parsePaymentMethod(raw string) (journey.PaymentMethod, error) {
	method := journey.PaymentMethod(raw)
	switch method {
	case journey.PayByPhone, journey.PayOnline, journey.PayByBankTransfer, journey.NoOutstandingPayment:
		return method, nil
	}
	return "", errors.New("unknown payment method: " + raw)
}

func parseFeeSummary(req FeeSummaryRequest) (journey.FeeSummary, error) {
	total, err := decimal.NewFromString(req.TotalFee)
	if err != nil {
		return journey.FeeSummary{}, err
	}
	previous := decimal.Zero
	if req.PreviousPayments != "" {
		previous, err = decimal.NewFromString(req.PreviousPayments)
		if err != nil {
			return journey.FeeSummary{}, err
		}
	}
	return journey.NewFeeSummary(total, previous), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

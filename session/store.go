/*
Package session defines the ephemeral per-user session envelope and the
narrow storage contract it lives behind.

PURPOSE:
  The engine itself is pure; the only state in the system is the session
  record controllers populate with downstream facts. Sessions are
  ephemeral - created when a journey begins, discarded at expiry - and the
  engine never depends on a concrete store, only on this interface.

IMPLEMENTATIONS:
  session.Memory (memory.go):  RWMutex-guarded map, for tests and dev
  sqlite.Store (store/sqlite): JSON document per session, for single-node
                               deployments that survive restarts

SEE ALSO:
  - memory.go: In-memory implementation
  - store/sqlite/sqlite.go: SQLite implementation
  - journey: The fact records a session carries
*/
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/packlane/compliance-engine/journey"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Session is the per-user envelope around the journey fact records.
// Either journey record may be nil until that journey begins.
type Session struct {
	ID             string                                           `json:"id"`
	OrganisationID string                                           `json:"organisation_id"`
	Registration   *journey.RegistrationApplicationSession          `json:"registration,omitempty"`
	Resubmission   *journey.PackagingResubmissionApplicationSession `json:"resubmission,omitempty"`
	CreatedAt      time.Time                                        `json:"created_at"`
	UpdatedAt      time.Time                                        `json:"updated_at"`
}

// New creates an empty session for an organisation.
func New(organisationID string, now time.Time) *Session {
	return &Session{
		ID:             uuid.NewString(),
		OrganisationID: organisationID,
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}
}

// Store is the session persistence contract. Save overwrites; Get returns
// ErrNotFound for unknown IDs.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

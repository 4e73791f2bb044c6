package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlane/compliance-engine/journey"
	"github.com/packlane/compliance-engine/session"
	"github.com/packlane/compliance-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func paymentMethod(m journey.PaymentMethod) *journey.PaymentMethod { return &m }

// =============================================================================
// ROUND-TRIP TESTS
// =============================================================================

func TestSQLiteStore_SaveAndGet_RoundTripsJourneyFacts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	submitted := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC)

	sess := session.New("org-42", now)
	sess.Registration = &journey.RegistrationApplicationSession{
		ApplicationStatus:        journey.SubmittedToRegulator,
		FileReachedSynapse:       true,
		FeePaymentMethod:         paymentMethod(journey.PayOnline),
		ApplicationSubmittedDate: &submitted,
		RegistrationYear:         2026,
	}

	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, "org-42", loaded.OrganisationID)
	require.NotNil(t, loaded.Registration)
	assert.Equal(t, journey.SubmittedToRegulator, loaded.Registration.ApplicationStatus)
	assert.True(t, loaded.Registration.FileReachedSynapse)
	require.NotNil(t, loaded.Registration.FeePaymentMethod)
	assert.Equal(t, journey.PayOnline, *loaded.Registration.FeePaymentMethod)

	// Derived state survives the round trip because the facts do.
	assert.Equal(t, journey.TaskCompleted, loaded.Registration.FileUploadStatus())
	assert.Equal(t, journey.TaskCompleted, loaded.Registration.PaymentViewStatus())
	assert.Equal(t, journey.TaskCompleted, loaded.Registration.AdditionalDetailsStatus())
}

func TestSQLiteStore_SaveIsUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("org-1", time.Now().UTC())
	require.NoError(t, store.Save(ctx, sess))

	sess.Resubmission = &journey.PackagingResubmissionApplicationSession{
		ApplicationStatus: journey.FileUploaded,
	}
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Resubmission)
	assert.Equal(t, journey.FileUploaded, loaded.Resubmission.ApplicationStatus)
}

func TestSQLiteStore_GetUnknownID(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, session.ErrNotFound))
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := session.New("org-1", time.Now().UTC())
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err := store.Get(ctx, sess.ID)
	assert.True(t, errors.Is(err, session.ErrNotFound))

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, sess.ID))
}

func TestSQLiteStore_DeleteExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	old := session.New("org-old", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	fresh := session.New("org-fresh", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, old))
	require.NoError(t, store.Save(ctx, fresh))

	removed, err := store.DeleteExpired(ctx, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = store.Get(ctx, old.ID)
	assert.True(t, errors.Is(err, session.ErrNotFound))
	_, err = store.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

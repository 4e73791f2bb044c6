package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/packlane/compliance-engine/journey"
	"github.com/packlane/compliance-engine/session"
)

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemory()
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	sess := session.New("org-1", now)
	sess.Registration = &journey.RegistrationApplicationSession{
		ApplicationStatus:  journey.FileUploaded,
		FileReachedSynapse: false,
	}

	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.OrganisationID != "org-1" {
		t.Errorf("organisation = %s, want org-1", loaded.OrganisationID)
	}
	if loaded.Registration == nil || loaded.Registration.ApplicationStatus != journey.FileUploaded {
		t.Errorf("registration facts not round-tripped: %+v", loaded.Registration)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemory_GetUnknownID(t *testing.T) {
	store := session.NewMemory()
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_GetReturnsIsolatedCopy(t *testing.T) {
	// GIVEN: A saved session
	// WHEN: One caller mutates its loaded copy
	// THEN: Other callers are unaffected until a Save

	ctx := context.Background()
	store := session.NewMemory()
	sess := session.New("org-2", time.Now().UTC())
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	first, _ := store.Get(ctx, sess.ID)
	first.Registration = &journey.RegistrationApplicationSession{ApplicationStatus: journey.SubmittedToRegulator}

	second, _ := store.Get(ctx, sess.ID)
	if second.Registration != nil {
		t.Error("mutation of a loaded copy leaked into the store")
	}
}

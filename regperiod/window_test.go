package regperiod_test

import (
	"testing"
	"time"

	"github.com/packlane/compliance-engine/regperiod"
)

func testWindow() regperiod.Window {
	return regperiod.Window{
		Type:             regperiod.WindowDirectLargeProducer,
		RegistrationYear: 2026,
		OpeningDate:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Deadline:         time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		ClosingDate:      time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestWindow_StatusAt_Boundaries(t *testing.T) {
	// GIVEN: opening=2026-01-01, deadline=2026-04-01, closing=2026-10-01
	// THEN: Each boundary instant belongs to the state it opens

	w := testWindow()
	cases := []struct {
		now  time.Time
		want regperiod.WindowStatus
	}{
		{time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), regperiod.PriorToOpening},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), regperiod.OpenAndNotLate},
		{time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC), regperiod.OpenAndNotLate},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), regperiod.OpenAndLate},
		{time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC), regperiod.OpenAndLate},
		{time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), regperiod.Closed},
		{time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC), regperiod.Closed},
	}

	for _, tc := range cases {
		if got := w.StatusAt(tc.now); got != tc.want {
			t.Errorf("StatusAt(%s) = %s, want %s", tc.now, got, tc.want)
		}
	}
}

func TestWindow_IsLateAt(t *testing.T) {
	w := testWindow()
	if w.IsLateAt(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("before deadline should not be late")
	}
	if !w.IsLateAt(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("after deadline should be late")
	}
	if w.IsLateAt(time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("closed window is not late, it is closed")
	}
}

func TestWindowType_Classify_Exhaustive(t *testing.T) {
	// GIVEN: Every window type, including legacy and unknown tags
	// THEN: The mapping is total and matches the journey split

	direct, cso := regperiod.JourneyDirect, regperiod.JourneyCso
	cases := []struct {
		wt      regperiod.WindowType
		journey *regperiod.Journey
		isCso   bool
	}{
		{regperiod.WindowCsoLargeProducer, &cso, true},
		{regperiod.WindowCsoSmallProducer, &cso, true},
		{regperiod.WindowDirectLargeProducer, &direct, false},
		{regperiod.WindowDirectSmallProducer, &direct, false},
		{regperiod.WindowLegacyCso, nil, true},
		{regperiod.WindowType("SomethingElse"), nil, false},
	}

	for _, tc := range cases {
		journey, isCso := tc.wt.Classify()
		if isCso != tc.isCso {
			t.Errorf("%s: isCso = %v, want %v", tc.wt, isCso, tc.isCso)
		}
		switch {
		case tc.journey == nil && journey != nil:
			t.Errorf("%s: journey = %v, want nil", tc.wt, *journey)
		case tc.journey != nil && journey == nil:
			t.Errorf("%s: journey = nil, want %v", tc.wt, *tc.journey)
		case tc.journey != nil && *journey != *tc.journey:
			t.Errorf("%s: journey = %v, want %v", tc.wt, *journey, *tc.journey)
		}
	}
}

func TestDateTemplate_Resolve(t *testing.T) {
	// GIVEN: A template opening in October of the preceding year
	d := regperiod.DateTemplate{YearOffset: -1, Month: time.October, Day: 1}
	want := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	if got := d.Resolve(2026); !got.Equal(want) {
		t.Errorf("Resolve(2026) = %s, want %s", got, want)
	}
}

package services

import (
	"testing"
	"time"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
)

func TestCompletionStampForCompletedIsCallTimeUTC(t *testing.T) {
	machine := NewStatusMachine(false)
	now := time.Now()

	stamp := machine.CompletionStamp(constants.StatusCompleted, now)
	if stamp == nil {
		t.Fatal("expected a completion stamp")
	}
	if !stamp.Equal(now) {
		t.Errorf("expected stamp %v, got %v", now.UTC(), stamp)
	}
	if stamp.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", stamp.Location())
	}
}

func TestCompletionStampClearsForOtherStatuses(t *testing.T) {
	machine := NewStatusMachine(false)
	now := time.Now()

	for _, status := range []constants.TaskStatus{constants.StatusPending, constants.StatusInProgress} {
		if stamp := machine.CompletionStamp(status, now); stamp != nil {
			t.Errorf("status %v: expected no stamp, got %v", status, stamp)
		}
	}
}

func TestLegacyStampSerializesLocalWallClockAsUTC(t *testing.T) {
	machine := NewStatusMachine(true)

	// 12:00 at UTC+2. The origin system shifts by the local offset before
	// serializing with a Z marker, so the wire value reads 12:00Z even
	// though the true instant is 10:00Z.
	zone := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, zone)

	stamp := machine.CompletionStamp(constants.StatusCompleted, now)
	if stamp == nil {
		t.Fatal("expected a completion stamp")
	}

	got := stamp.Format(time.RFC3339)
	want := "2026-08-30T12:00:00Z"
	if got != want {
		t.Errorf("expected wire value %q, got %q", want, got)
	}
}

func TestLegacyStampWithNegativeOffset(t *testing.T) {
	machine := NewStatusMachine(true)

	zone := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2026, 8, 30, 9, 30, 0, 0, zone)

	stamp := machine.CompletionStamp(constants.StatusCompleted, now)
	if got, want := stamp.Format(time.RFC3339), "2026-08-30T09:30:00Z"; got != want {
		t.Errorf("expected wire value %q, got %q", want, got)
	}
}

package services

import (
	"time"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
)

// StatusMachine computes the completion-timestamp side effect of a status
// change. All three statuses are reachable from all others; stamping is the
// only transition rule.
type StatusMachine struct {
	legacy bool
}

// NewStatusMachine builds the machine. In legacy mode the stamp reproduces
// the origin system's wire value: the local wall clock shifted by the local
// offset and then serialized with a UTC marker, which is not true UTC. Keep
// legacy on when the remote store already holds such values.
func NewStatusMachine(legacy bool) *StatusMachine {
	return &StatusMachine{legacy: legacy}
}

// CompletionStamp returns the completedAt for this save. Entering Completed
// stamps the current time; any other target status clears the field, even if
// the task was previously completed. The stamp is fixed at save time, never
// recomputed from prior state.
func (m *StatusMachine) CompletionStamp(status constants.TaskStatus, now time.Time) *time.Time {
	if status != constants.StatusCompleted {
		return nil
	}

	if m.legacy {
		_, offset := now.Zone()
		shifted := now.Add(time.Duration(offset) * time.Second).UTC()
		return &shifted
	}

	utc := now.UTC()
	return &utc
}

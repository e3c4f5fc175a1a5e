package store

import (
	"fmt"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
)

// Criterion selects which tasks a view shows.
type Criterion int

const (
	CriterionAll Criterion = iota
	CriterionPending
	CriterionInProgress
	CriterionCompleted
)

func CriterionFor(status constants.TaskStatus) Criterion {
	switch status {
	case constants.StatusInProgress:
		return CriterionInProgress
	case constants.StatusCompleted:
		return CriterionCompleted
	default:
		return CriterionPending
	}
}

// ParseCriterion reads a criterion from user input; an empty value or
// "todos" means no filtering.
func ParseCriterion(v string) (Criterion, error) {
	if v == "" || v == "todos" {
		return CriterionAll, nil
	}
	status, err := constants.ParseStatus(v)
	if err != nil {
		return CriterionAll, fmt.Errorf("invalid filter %q", v)
	}
	return CriterionFor(status), nil
}

func (c Criterion) matches(status constants.TaskStatus) bool {
	switch c {
	case CriterionPending:
		return status == constants.StatusPending
	case CriterionInProgress:
		return status == constants.StatusInProgress
	case CriterionCompleted:
		return status == constants.StatusCompleted
	default:
		return true
	}
}

// Filter derives the visible, order-preserving subsequence of tasks matching
// the criterion. Pure: no I/O, no mutation of the input.
func Filter(tasks []model.Task, c Criterion) []model.Task {
	if c == CriterionAll {
		filtered := make([]model.Task, len(tasks))
		copy(filtered, tasks)
		return filtered
	}

	filtered := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if c.matches(task.Status) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

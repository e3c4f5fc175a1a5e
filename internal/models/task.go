package model

import (
	"time"
	"unicode/utf8"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	apperrors "github.com/jessicacardoso1/taskmanager-web/internal/errors"
)

const TitleMaxLength = 100

type Task struct {
	ID          int                  `gorm:"primaryKey;autoIncrement"`
	Title       string               `gorm:"size:100;not null"`
	Description string               `gorm:"not null"`
	Status      constants.TaskStatus `gorm:"not null"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// ValidateTitle enforces the title bounds before any create or update call
// leaves the client; the fixture server applies the same rule.
func ValidateTitle(title string) error {
	if title == "" {
		return apperrors.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > TitleMaxLength {
		return apperrors.ErrTitleTooLong
	}
	return nil
}

package errors

import (
	"errors"
	"net/http"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
)

// Exception is a normalized remote failure: either an envelope with
// isSuccess false or an HTTP status outside the expected success code for
// that operation. Message carries the server-provided text when there is one.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether the failure means the task no longer exists
// server-side. The origin store signals this either with a 404 or with a
// success-flag envelope carrying the exact not-found message.
func IsNotFound(err error) bool {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusNotFound ||
			appErr.Message == constants.MsgTaskNotFound
	}
	return false
}

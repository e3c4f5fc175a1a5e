package errors

import (
	"net/http"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
)

var ErrTaskNotFound = &Exception{
	Message:    constants.MsgTaskNotFound,
	StatusCode: http.StatusNotFound,
}

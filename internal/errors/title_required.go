package errors

import (
	"net/http"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
)

var ErrTitleRequired = &Exception{
	Message:    constants.MsgTitleRequired,
	StatusCode: http.StatusBadRequest,
}

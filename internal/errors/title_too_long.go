package errors

import (
	"net/http"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
)

var ErrTitleTooLong = &Exception{
	Message:    constants.MsgTitleTooLong,
	StatusCode: http.StatusBadRequest,
}

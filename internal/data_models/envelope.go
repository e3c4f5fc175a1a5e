package dto

// Envelope is the `{isSuccess, message, data}` wrapper used by the list, get,
// create and delete endpoints. The update endpoint deliberately does not use
// it: success there is a bare 204.
type Envelope struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of todo, in-progress, review, done",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "not authenticated",
	StatusCode: http.StatusUnauthorized,
}

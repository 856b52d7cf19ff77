package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "insufficient role or ownership",
	StatusCode: http.StatusForbidden,
}

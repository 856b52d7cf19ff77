package errors

import "net/http"

var ErrCommitInFlight = &Exception{
	Message:    "a commit for this task is still in flight, retry shortly",
	StatusCode: http.StatusConflict,
}

package errors

import "net/http"

var ErrDragInProgress = &Exception{
	Message:    "another drag is already active on this board",
	StatusCode: http.StatusConflict,
}

package errors

import "net/http"

var ErrAssigneeNotFound = &Exception{
	Message:    "assignee does not reference an existing member",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrCommentTextRequired = &Exception{
	Message:    "comment text must not be empty",
	StatusCode: http.StatusBadRequest,
}

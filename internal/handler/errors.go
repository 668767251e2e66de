package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Resource not found",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusInternalServerError: "Internal server error",
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// abortWithError writes the error body for status and stops the handler chain.
// The cause, if any, is attached to the context for the request logger.
func abortWithError(c *gin.Context, status int, cause error) {
	if cause != nil {
		_ = c.Error(cause)
	}
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: status, Message: msg})
}

// NotFound answers unknown API routes in the API error format
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, nil)
}

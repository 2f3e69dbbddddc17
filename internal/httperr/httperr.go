package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond maps a use case error onto the response. Business codes listed in
// businessStatus get their status; other business errors are 400. Unknown
// codes are echoed as their own message.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	switch {
	case IsUpstream(err):
		Write(c, http.StatusBadGateway, "upstream_unavailable", "Could not load data from the booking API.")
	case errors.As(err, &be):
		status, ok := businessStatus[be.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		message, ok := businessMessages[be.Code]
		if !ok {
			message = be.Code
		}
		Write(c, status, be.Code, message)
	default:
		Internal(c, "internal_error", "Unexpected error.")
	}
}

var businessStatus = map[string]int{
	"archive_disabled": http.StatusServiceUnavailable,
	"audit_disabled":   http.StatusServiceUnavailable,
	"no_invoice_data":  http.StatusUnprocessableEntity,
}

var businessMessages = map[string]string{
	"archive_disabled":       "Invoice archiving is not configured.",
	"audit_disabled":         "Audit logging is not configured.",
	"no_invoice_data":        "No payment data available to build this invoice.",
	"invalid_user_id":        "User id is required.",
	"invalid_appointment_id": "Appointment id is required.",
}

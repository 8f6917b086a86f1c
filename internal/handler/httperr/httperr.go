package httperr

import (
	"net/http"

	"lab-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var badRequest = []error{
	errs.ErrInvalidInput,
	errs.ErrRoleMismatch,
	errs.ErrUnavailable,
	errs.ErrUnderMaintenance,
	errs.ErrExperimentNotInLab,
	errs.ErrNotLinked,
	errs.ErrSchedulingConflict,
}

// StatusFor maps an engine failure category to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.IsAny(err, badRequest...):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithDomainError hides the message of unexpected failures.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}

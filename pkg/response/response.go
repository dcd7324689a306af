package response

import (
	"errors"
	"net/http"

	pkgErrors "inbox-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	messageSuccess      = "Success"
	messageUnauthorized = "Unauthorized"
	messageInternal     = "Something went wrong"
	messageValidation   = "Invalid request"
)

// OK writes a 200 envelope with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Error writes err as an envelope. HTTPError and ValidationError keep their status; anything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if verr := pkgErrors.NewValidationError(err); verr != nil {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   messageValidation,
			Errors:    verr.Fields,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternal,
	})
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   messageUnauthorized,
	})
}

// PanicError writes a 500 envelope after a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternal,
	})
}

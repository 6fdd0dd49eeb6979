package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// BadRequest sends 400 with the validation message. Used for missing or
// malformed request parameters, before any provider call is made.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestErrorCode,
		Message:   err.Error(),
	})
}

// InternalError sends 500 carrying the stringified upstream error. Provider
// failures are surfaced verbatim; there is no transient/permanent
// classification.
func InternalError(c *gin.Context, err error) {
	message := DefaultErrorMessage
	if err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   message,
	})
}

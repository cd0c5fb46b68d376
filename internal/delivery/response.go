package delivery

import (
	"errors"
	"net/http"

	"category_admin/internal/auth"
	"category_admin/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// FailWithError writes err using the status from mapErrorToStatus. Validation
// failures carry their per-field messages in Data.
func FailWithError(c *gin.Context, prefix string, err error) {
	statusCode := mapErrorToStatus(err)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(statusCode, Response{
			Status:  "Fail",
			Message: prefix + ": validation failed",
			Data:    verr.Fields,
		})
		return
	}

	ErrorResponse(c, statusCode, prefix+": "+err.Error())
}

func mapErrorToStatus(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Is(domain.ErrDuplicateName) {
			return http.StatusConflict
		}
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

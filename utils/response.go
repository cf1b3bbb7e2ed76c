// File: /utils/response.go
package utils

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ou8123/findshuttles-sub001/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// RespondError maps a service/repository error onto the HTTP error
// contract. Sentinel errors from the models package carry a user-facing
// message; anything unrecognized is logged with context and surfaced as a
// generic 500 so no internal detail leaks.
func RespondError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		SendError(c, http.StatusBadRequest, userMessage(err, models.ErrValidation))
	case errors.Is(err, models.ErrUnauthorized):
		SendError(c, http.StatusUnauthorized, userMessage(err, models.ErrUnauthorized))
	case errors.Is(err, models.ErrNotFound):
		SendError(c, http.StatusNotFound, userMessage(err, models.ErrNotFound))
	case errors.Is(err, models.ErrConflict):
		SendError(c, http.StatusConflict, userMessage(err, models.ErrConflict))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		SendError(c, http.StatusConflict, "Record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		SendError(c, http.StatusConflict, "Record has dependents; remove them first")
	default:
		log.Printf("storage error (%s): %v", context, err)
		SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// userMessage strips the sentinel suffix that fmt.Errorf("...: %w", sentinel)
// leaves on the message. The remainder is what the admin UI renders inline.
func userMessage(err error, sentinel error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
	if msg == "" || msg == sentinel.Error() {
		return sentinel.Error()
	}
	return msg
}

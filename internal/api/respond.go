package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhakhand/sport-calendar-backend/internal/repository"
)

// statusFor 核心错误类型到状态码的映射：
// NotFound→404，Validation/InvalidFixture→400，Conflict/DuplicateFixture→409，其余→500
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrInvalidFixture):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrConflict), errors.Is(err, repository.ErrDuplicateFixture):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func replyError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gigifypro-backend/internal/data/dberr"
	"github.com/yungbote/gigifypro-backend/internal/platform/apierr"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

var errInternal = errors.New("internal server error")

// RespondServiceError maps a service error onto the error envelope. Errors
// that carry no HTTP mapping become a 500 and their detail is only logged.
func RespondServiceError(c *gin.Context, log *logger.Logger, err error) {
	if ae, ok := apierr.As(err); ok {
		RespondError(c, ae.Status, ae.Code, ae)
		return
	}
	switch dberr.CodeOf(err) {
	case dberr.CodeConflict:
		RespondError(c, http.StatusConflict, "conflict", errors.New("conflicting update, retry the request"))
		return
	case dberr.CodeRetryable:
		RespondError(c, http.StatusServiceUnavailable, "retryable", errors.New("temporarily unavailable, retry the request"))
		return
	}
	if log != nil {
		log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	RespondError(c, http.StatusInternalServerError, "internal", errInternal)
}

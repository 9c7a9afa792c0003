package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/gigifypro-backend/internal/http/response"
	"github.com/yungbote/gigifypro-backend/internal/platform/ctxutil"
)

var (
	errUnauthenticated = errors.New("missing or invalid token")
	errInvalidBody     = errors.New("invalid request body")
)

// uuidParam reads a path id. A malformed id can never name a stored row, so it
// answers with notFoundCode rather than a 400.
func uuidParam(c *gin.Context, name, notFoundCode string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, notFoundCode, notFound)
		return uuid.Nil, false
	}
	return id, true
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errUnauthenticated)
		return uuid.Nil, false
	}
	return rd.UserID, true
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/http/response"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/services"
)

type CommunityHandler struct {
	log       *logger.Logger
	community services.CommunityService
}

func NewCommunityHandler(log *logger.Logger, community services.CommunityService) *CommunityHandler {
	return &CommunityHandler{log: log.With("handler", "CommunityHandler"), community: community}
}

// POST /api/community/stats/increment
// body: { "posts": 1, "comments": 0, "helpfulReacts": 2, "acceptedAnswers": 0 }
func (h *CommunityHandler) Increment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var delta domain.CommunityDelta
	if err := c.ShouldBindJSON(&delta); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	stats, err := h.community.IncrementStats(c.Request.Context(), userID, delta)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, stats)
}

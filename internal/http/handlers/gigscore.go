package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gigifypro-backend/internal/http/response"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/services"
)

const maxHistoryLimit = 100

type GigScoreHandler struct {
	log      *logger.Logger
	gigscore services.GigScoreService
}

func NewGigScoreHandler(log *logger.Logger, gigscore services.GigScoreService) *GigScoreHandler {
	return &GigScoreHandler{log: log.With("handler", "GigScoreHandler"), gigscore: gigscore}
}

// GET /api/gigscore/:profileId
func (h *GigScoreHandler) GetBreakdown(c *gin.Context) {
	profileID, ok := uuidParam(c, "profileId", services.ErrProfileNotFound.Code, services.ErrProfileNotFound)
	if !ok {
		return
	}
	b, err := h.gigscore.Calculate(c.Request.Context(), profileID)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, b)
}

// POST /api/gigscore/:profileId/update
func (h *GigScoreHandler) Update(c *gin.Context) {
	profileID, ok := uuidParam(c, "profileId", services.ErrProfileNotFound.Code, services.ErrProfileNotFound)
	if !ok {
		return
	}
	b, err := h.gigscore.Update(c.Request.Context(), profileID)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"totalScore": b.TotalScore})
}

// GET /api/gigscore/:profileId/history?limit=
func (h *GigScoreHandler) History(c *gin.Context) {
	profileID, ok := uuidParam(c, "profileId", services.ErrProfileNotFound.Code, services.ErrProfileNotFound)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, maxHistoryLimit)
	}
	snaps, err := h.gigscore.History(c.Request.Context(), profileID, limit)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"snapshots": snaps})
}

// GET /api/me/gigscore
func (h *GigScoreHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	preview, err := h.gigscore.PreviewForUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, preview)
}

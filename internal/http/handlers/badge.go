package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/http/response"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/services"
)

var errUserNotFound = errors.New("user not found")

type BadgeHandler struct {
	log      *logger.Logger
	badges   services.BadgeService
	training services.TrainingService
}

func NewBadgeHandler(log *logger.Logger, badges services.BadgeService, training services.TrainingService) *BadgeHandler {
	return &BadgeHandler{log: log.With("handler", "BadgeHandler"), badges: badges, training: training}
}

// POST /api/badges/check
func (h *BadgeHandler) Check(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	awarded, err := h.badges.CheckAndAward(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"awarded": nonNil(awarded)})
}

// GET /api/users/:userId/badges
func (h *BadgeHandler) ListForUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId", "user_not_found", errUserNotFound)
	if !ok {
		return
	}
	held, err := h.badges.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	if held == nil {
		held = []*domain.UserBadge{}
	}
	response.RespondOK(c, gin.H{"badges": held})
}

// POST /api/training/:articleId/complete
func (h *BadgeHandler) CompleteTraining(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	awarded, err := h.training.Complete(c.Request.Context(), userID, c.Param("articleId"))
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"awarded": nonNil(awarded)})
}

func nonNil(in []domain.BadgeType) []domain.BadgeType {
	if in == nil {
		return []domain.BadgeType{}
	}
	return in
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/gigifypro-backend/internal/http/response"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
	"github.com/yungbote/gigifypro-backend/internal/services"
)

type VolunteerHandler struct {
	log       *logger.Logger
	volunteer services.VolunteerService
}

func NewVolunteerHandler(log *logger.Logger, volunteer services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{log: log.With("handler", "VolunteerHandler"), volunteer: volunteer}
}

// POST /api/volunteer/entries
func (h *VolunteerHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var in services.CreateVolunteerEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	entry, err := h.volunteer.CreateEntry(c.Request.Context(), userID, in)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondCreated(c, entry)
}

// PATCH /api/volunteer/entries/:id
func (h *VolunteerHandler) Moderate(c *gin.Context) {
	moderatorID, ok := callerID(c)
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "id", services.ErrVolunteerEntryNotFound.Code, services.ErrVolunteerEntryNotFound)
	if !ok {
		return
	}
	var in services.ModerateVolunteerEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	entry, err := h.volunteer.Moderate(c.Request.Context(), moderatorID, entryID, in)
	if err != nil {
		response.RespondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, entry)
}

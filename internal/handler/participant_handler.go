package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hangout-api/internal/dto"
	"hangout-api/internal/response"
	"hangout-api/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
}

func NewParticipantHandler(participantService service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// InviteParticipants godoc
// @Summary      Invite participants (single or bulk)
// @Description  Invites one or more users to a hangout
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Param        request body dto.InviteParticipantsRequest true "Invitation request (single: one userId in the array, bulk: several)"
// @Success      201 {object} dto.InviteParticipantsResponse "All participants added"
// @Success      207 {object} dto.InviteParticipantsResponse "Partial success (Multi-Status)"
// @Failure      400 {object} response.ErrorResponse "Invalid request or all invitations failed"
// @Failure      403 {object} response.ErrorResponse "Insufficient permission"
// @Failure      404 {object} response.ErrorResponse "Hangout not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/participants [post]
func (h *ParticipantHandler) InviteParticipants(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	var req dto.InviteParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.participantService.InviteParticipants(c.Request.Context(), hangoutID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// If all participants failed to add, return 400 Bad Request
	if result.TotalSuccess == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "All participants failed to add")
		return
	}

	// If some participants failed (partial success), return 207 Multi-Status
	if result.TotalFailed > 0 {
		c.JSON(http.StatusMultiStatus, result)
		return
	}

	// If all participants succeeded, return 201 Created
	response.SendSuccess(c, http.StatusCreated, result)
}

// GetParticipants godoc
// @Summary      List participants of a hangout
// @Description  Returns every participant of the hangout
// @Tags         participants
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ParticipantResponse} "Participant list"
// @Failure      400 {object} response.ErrorResponse "Invalid hangout ID"
// @Failure      404 {object} response.ErrorResponse "Hangout not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/participants [get]
func (h *ParticipantHandler) GetParticipants(c *gin.Context) {
	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	participants, err := h.participantService.GetParticipants(c.Request.Context(), hangoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, participants)
}

// RemoveParticipant godoc
// @Summary      Remove a participant
// @Description  Removes a participant from the hangout. Users may remove themselves; removing others requires management rights.
// @Tags         participants
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Participant removed"
// @Failure      400 {object} response.ErrorResponse "Invalid ID"
// @Failure      403 {object} response.ErrorResponse "Insufficient permission"
// @Failure      404 {object} response.ErrorResponse "Hangout or participant not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/participants/{userId} [delete]
func (h *ParticipantHandler) RemoveParticipant(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	if err := h.participantService.RemoveParticipant(c.Request.Context(), hangoutID, auth.UserID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

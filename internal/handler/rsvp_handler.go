package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hangout-api/internal/dto"
	"hangout-api/internal/response"
	"hangout-api/internal/service"
)

type RSVPHandler struct {
	rsvpService service.RSVPService
}

func NewRSVPHandler(rsvpService service.RSVPService) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
	}
}

// GetRSVPs godoc
// @Summary      List RSVPs
// @Description  Returns the attendance records of a hangout
// @Tags         rsvps
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.RSVPResponse} "RSVP list"
// @Failure      400 {object} response.ErrorResponse "Invalid hangout ID"
// @Failure      404 {object} response.ErrorResponse "Hangout not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/rsvps [get]
func (h *RSVPHandler) GetRSVPs(c *gin.Context) {
	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	result, err := h.rsvpService.GetRSVPs(c.Request.Context(), hangoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// RespondRSVP godoc
// @Summary      Respond to an RSVP
// @Description  Records the authenticated user's attendance response for a confirmed hangout
// @Tags         rsvps
// @Accept       json
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Param        request body dto.RespondRSVPRequest true "Attendance response"
// @Success      200 {object} response.SuccessResponse{data=dto.RSVPResponse} "RSVP recorded"
// @Failure      400 {object} response.ErrorResponse "Invalid request or hangout not collecting RSVPs"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      404 {object} response.ErrorResponse "Hangout or RSVP not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/rsvps/me [put]
func (h *RSVPHandler) RespondRSVP(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	var req dto.RespondRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.rsvpService.Respond(c.Request.Context(), hangoutID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

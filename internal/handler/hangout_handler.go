package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hangout-api/internal/dto"
	"hangout-api/internal/response"
	"hangout-api/internal/service"
)

type HangoutHandler struct {
	hangoutService service.HangoutService
}

func NewHangoutHandler(hangoutService service.HangoutService) *HangoutHandler {
	return &HangoutHandler{
		hangoutService: hangoutService,
	}
}

// CreateHangout godoc
// @Summary      Create a hangout
// @Description  Creates a hangout. With two or more options a poll opens and voting begins; with exactly one option the plan is confirmed immediately and RSVP collection starts.
// @Tags         hangouts
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateHangoutRequest true "Hangout creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.HangoutResponse} "Hangout created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       / [post]
func (h *HangoutHandler) CreateHangout(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateHangoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.hangoutService.CreateHangout(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetMyHangouts godoc
// @Summary      List my hangouts
// @Description  Returns the hangouts created by the authenticated user
// @Tags         hangouts
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.HangoutResponse} "Hangout list"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       / [get]
func (h *HangoutHandler) GetMyHangouts(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := h.hangoutService.GetMyHangouts(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetHangout godoc
// @Summary      Get a hangout
// @Description  Returns the hangout with its poll and current planning phase
// @Tags         hangouts
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.HangoutResponse} "Hangout details"
// @Failure      400 {object} response.ErrorResponse "Invalid hangout ID"
// @Failure      404 {object} response.ErrorResponse "Hangout not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId} [get]
func (h *HangoutHandler) GetHangout(c *gin.Context) {
	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	result, err := h.hangoutService.GetHangout(c.Request.Context(), hangoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateHangout godoc
// @Summary      Update a hangout
// @Description  Applies a partial update to hangout metadata
// @Tags         hangouts
// @Accept       json
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Param        request body dto.UpdateHangoutRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.HangoutResponse} "Updated hangout"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Insufficient permission"
// @Failure      404 {object} response.ErrorResponse "Hangout not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId} [put]
func (h *HangoutHandler) UpdateHangout(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	var req dto.UpdateHangoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.hangoutService.UpdateHangout(c.Request.Context(), hangoutID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CancelHangout godoc
// @Summary      Cancel a hangout
// @Description  Cancels the hangout and closes its poll. Only the creator may cancel.
// @Tags         hangouts
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Hangout cancelled"
// @Failure      400 {object} response.ErrorResponse "Invalid hangout ID"
// @Failure      403 {object} response.ErrorResponse "Only the creator can cancel"
// @Failure      404 {object} response.ErrorResponse "Hangout not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId} [delete]
func (h *HangoutHandler) CancelHangout(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	if err := h.hangoutService.CancelHangout(c.Request.Context(), hangoutID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hangout-api/internal/dto"
	"hangout-api/internal/response"
	"hangout-api/internal/service"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// CastVote godoc
// @Summary      Cast a vote
// @Description  Records a vote operation (add/remove/toggle/preferred) on a poll option. Voting on a hangout the user has not joined makes them a member first. When the vote clears the consensus threshold the poll finalizes and the response carries the winning option.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Param        request body dto.CastVoteRequest true "Vote operation"
// @Success      200 {object} response.SuccessResponse{data=dto.VoteResponse} "Vote recorded"
// @Failure      400 {object} response.ErrorResponse "Invalid request or voting closed"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      404 {object} response.ErrorResponse "Hangout or poll not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/votes [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.voteService.CastVote(c.Request.Context(), hangoutID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetPollSummary godoc
// @Summary      Get the live poll tally
// @Description  Returns per-option vote tallies and the consensus parameters in effect
// @Tags         votes
// @Produce      json
// @Param        hangoutId path string true "Hangout ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PollSummaryResponse} "Poll summary"
// @Failure      400 {object} response.ErrorResponse "Invalid hangout ID"
// @Failure      404 {object} response.ErrorResponse "Hangout has no poll"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{hangoutId}/poll/summary [get]
func (h *VoteHandler) GetPollSummary(c *gin.Context) {
	hangoutID, err := uuid.Parse(c.Param("hangoutId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hangout ID")
		return
	}

	result, err := h.voteService.GetPollSummary(c.Request.Context(), hangoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"factcheck/internal/models/request_models"
	"factcheck/internal/services"
	"factcheck/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Record a user's verdict on an analysis result
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.SubmitFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /feedback/submit [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, request_models.BindingErrorDetail(err))
		return
	}

	feedback, err := f.feedbackService.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyInsert) {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to insert feedback")
			return
		}
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Error submitting feedback")
		utils.RespondError(c, http.StatusInternalServerError, "Failed to submit feedback: "+err.Error())
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback submitted successfully")
}

// ListFeedback godoc
// @Summary List feedback
// @Description Get a paginated list of feedback, newest first
// @Tags Feedback
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} db_models.Feedback
// @Router /feedback/list [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	feedbacks, err := f.feedbackService.GetFeedback(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}

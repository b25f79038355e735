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

type AnalysisRequestController struct {
	analysisService services.AnalysisRequestServiceInterface
}

func NewAnalysisRequestController(analysisService services.AnalysisRequestServiceInterface) *AnalysisRequestController {
	return &AnalysisRequestController{analysisService: analysisService}
}

func (a *AnalysisRequestController) CreateAnalysisRequest(c *gin.Context) {
	var req request_models.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, request_models.BindingErrorDetail(err))
		return
	}

	row, err := a.analysisService.CreateAnalysisRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyInsert) {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to create analysis request")
			return
		}
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Error creating analysis request")
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create analysis request: "+err.Error())
		return
	}

	utils.RespondSuccess(c, row, "Analysis request created successfully")
}

// StoreAnalysis godoc
// @Summary Store an analysis
// @Description Store an analysis request together with its result
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request_models.StoreAnalysisRequest true "Request and result"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /store-analysis [post]
func (a *AnalysisRequestController) StoreAnalysis(c *gin.Context) {
	var req request_models.StoreAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, request_models.BindingErrorDetail(err))
		return
	}

	stored, err := a.analysisService.StoreAnalysis(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyResultInsert):
			utils.RespondError(c, http.StatusInternalServerError, "Failed to store analysis result")
		case errors.Is(err, utils.ErrEmptyInsert):
			utils.RespondError(c, http.StatusInternalServerError, "Failed to store analysis request")
		default:
			log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Error storing analysis")
			utils.RespondError(c, http.StatusInternalServerError, "Error storing analysis: "+err.Error())
		}
		return
	}

	utils.RespondSuccess(c, stored, "Analysis stored successfully")
}

// GetAnalysis godoc
// @Summary Get an analysis
// @Description Get an analysis request and its result by request id
// @Tags Analysis
// @Produce json
// @Param request_id path int true "Analysis request id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /get-analysis/{request_id} [get]
func (a *AnalysisRequestController) GetAnalysis(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("request_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "request_id must be an integer")
		return
	}

	record, err := a.analysisService.GetAnalysis(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Analysis not found")
			return
		}
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Error retrieving analysis")
		utils.RespondError(c, http.StatusInternalServerError, "Error retrieving analysis: "+err.Error())
		return
	}

	utils.RespondSuccess(c, record, "Analysis fetched successfully")
}

package services

import (
	"context"
	"time"

	"factcheck/internal/models/db_models"
	"factcheck/internal/models/request_models"
	"factcheck/internal/models/response_models"
	"factcheck/internal/repositories"
	"factcheck/pkg/utils"
)

type AnalysisRequestServiceInterface interface {
	CreateAnalysisRequest(ctx context.Context, req request_models.CreateAnalysisRequest) (*db_models.AnalysisRequest, error)
	StoreAnalysis(ctx context.Context, req request_models.StoreAnalysisRequest) (*response_models.StoredAnalysis, error)
	GetAnalysis(ctx context.Context, requestID int64) (*response_models.AnalysisRecord, error)
}

type AnalysisRequestService struct {
	repo repositories.AnalysisRequestRepositoryInterface
	now  func() time.Time
}

func NewAnalysisRequestService(repo repositories.AnalysisRequestRepositoryInterface) AnalysisRequestServiceInterface {
	return &AnalysisRequestService{repo: repo, now: utils.NowUTC}
}

func (s *AnalysisRequestService) CreateAnalysisRequest(ctx context.Context, req request_models.CreateAnalysisRequest) (*db_models.AnalysisRequest, error) {
	row := s.newRequestRow(req)
	if err := s.repo.CreateAnalysisRequest(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// StoreAnalysis stamps both rows with the same server time.
func (s *AnalysisRequestService) StoreAnalysis(ctx context.Context, req request_models.StoreAnalysisRequest) (*response_models.StoredAnalysis, error) {
	request := s.newRequestRow(*req.Request)
	result := &db_models.AnalysisResult{
		CredibilityScore: *req.Result.CredibilityScore,
		FinalVerdict:     req.Result.FinalVerdict,
		AnalysisDate:     request.SubmissionDate,
	}

	if err := s.repo.StoreAnalysis(ctx, request, result); err != nil {
		return nil, err
	}
	return &response_models.StoredAnalysis{RequestID: request.ID, ResultID: result.ID}, nil
}

func (s *AnalysisRequestService) GetAnalysis(ctx context.Context, requestID int64) (*response_models.AnalysisRecord, error) {
	request, result, err := s.repo.GetAnalysis(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &response_models.AnalysisRecord{Request: *request, Result: *result}, nil
}

func (s *AnalysisRequestService) newRequestRow(req request_models.CreateAnalysisRequest) *db_models.AnalysisRequest {
	return &db_models.AnalysisRequest{
		ContentType:    req.ContentType,
		Content:        req.Content,
		UserID:         req.UserID,
		SubmissionDate: s.now().UTC(),
	}
}

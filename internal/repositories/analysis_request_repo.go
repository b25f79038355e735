package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"factcheck/internal/infra"
	"factcheck/internal/models/db_models"
	"factcheck/pkg/utils"
)

type AnalysisRequestRepositoryInterface interface {
	CreateAnalysisRequest(ctx context.Context, req *db_models.AnalysisRequest) error
	// StoreAnalysis inserts req, then res linked to it through RequestID.
	// An empty result insert is reported as utils.ErrEmptyResultInsert.
	StoreAnalysis(ctx context.Context, req *db_models.AnalysisRequest, res *db_models.AnalysisResult) error
	// GetAnalysis returns utils.ErrNotFound unless both rows exist.
	GetAnalysis(ctx context.Context, requestID int64) (*db_models.AnalysisRequest, *db_models.AnalysisResult, error)
}

func NewAnalysisRequestRepository(store *infra.Store) AnalysisRequestRepositoryInterface {
	if store.DB != nil {
		return &analysisRequestRepository{db: store.DB}
	}
	return &restAnalysisRequestRepository{
		requests: infra.NewRestTable[db_models.AnalysisRequest](store.Rest, db_models.AnalysisRequest{}.TableName()),
		results:  infra.NewRestTable[db_models.AnalysisResult](store.Rest, db_models.AnalysisResult{}.TableName()),
	}
}

type analysisRequestRepository struct {
	db *gorm.DB
}

func (a *analysisRequestRepository) CreateAnalysisRequest(ctx context.Context, req *db_models.AnalysisRequest) error {
	return createOne(a.db.WithContext(ctx), req, utils.ErrEmptyInsert)
}

func (a *analysisRequestRepository) StoreAnalysis(ctx context.Context, req *db_models.AnalysisRequest, res *db_models.AnalysisResult) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createOne(tx, req, utils.ErrEmptyInsert); err != nil {
			return err
		}
		res.RequestID = req.ID
		return createOne(tx, res, utils.ErrEmptyResultInsert)
	})
}

func (a *analysisRequestRepository) GetAnalysis(ctx context.Context, requestID int64) (*db_models.AnalysisRequest, *db_models.AnalysisResult, error) {
	db := a.db.WithContext(ctx)

	var req db_models.AnalysisRequest
	if err := db.Where("id = ?", requestID).Take(&req).Error; err != nil {
		return nil, nil, notFound(err)
	}

	var res db_models.AnalysisResult
	if err := db.Where("request_id = ?", requestID).Order("id").Take(&res).Error; err != nil {
		return nil, nil, notFound(err)
	}
	return &req, &res, nil
}

func createOne(db *gorm.DB, row any, emptyErr error) error {
	result := db.Create(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return emptyErr
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrNotFound
	}
	return err
}

type analysisRequestInsert struct {
	ContentType    string    `json:"content_type"`
	Content        string    `json:"content"`
	UserID         *string   `json:"user_id"`
	SubmissionDate time.Time `json:"submission_date"`
}

type analysisResultInsert struct {
	RequestID        int64     `json:"request_id"`
	CredibilityScore float64   `json:"credibility_score"`
	FinalVerdict     string    `json:"final_verdict"`
	AnalysisDate     time.Time `json:"analysis_date"`
}

// restAnalysisRequestRepository writes the two rows of StoreAnalysis as
// separate requests; a failed result insert leaves the request row behind.
type restAnalysisRequestRepository struct {
	requests *infra.RestTable[db_models.AnalysisRequest]
	results  *infra.RestTable[db_models.AnalysisResult]
}

func (a *restAnalysisRequestRepository) CreateAnalysisRequest(ctx context.Context, req *db_models.AnalysisRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := a.requests.Insert(analysisRequestInsert{
		ContentType:    req.ContentType,
		Content:        req.Content,
		UserID:         req.UserID,
		SubmissionDate: req.SubmissionDate,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return utils.ErrEmptyInsert
	}

	*req = rows[0]
	return nil
}

func (a *restAnalysisRequestRepository) StoreAnalysis(ctx context.Context, req *db_models.AnalysisRequest, res *db_models.AnalysisResult) error {
	if err := a.CreateAnalysisRequest(ctx, req); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := a.results.Insert(analysisResultInsert{
		RequestID:        req.ID,
		CredibilityScore: res.CredibilityScore,
		FinalVerdict:     res.FinalVerdict,
		AnalysisDate:     res.AnalysisDate,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return utils.ErrEmptyResultInsert
	}

	*res = rows[0]
	return nil
}

func (a *restAnalysisRequestRepository) GetAnalysis(ctx context.Context, requestID int64) (*db_models.AnalysisRequest, *db_models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	id := strconv.FormatInt(requestID, 10)

	requests, err := a.requests.FindBy("id", id, 1)
	if err != nil {
		return nil, nil, err
	}
	results, err := a.results.FindBy("request_id", id, 1)
	if err != nil {
		return nil, nil, err
	}
	if len(requests) == 0 || len(results) == 0 {
		return nil, nil, utils.ErrNotFound
	}
	return &requests[0], &results[0], nil
}

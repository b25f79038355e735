package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"factcheck/internal/infra"
	"factcheck/internal/models/db_models"
	"factcheck/pkg/utils"
)

type FeedbackRepositoryInterface interface {
	// CreateFeedback inserts feedback and replaces it with the stored row,
	// including the generated id. It returns utils.ErrEmptyInsert when the
	// store acknowledges the insert without returning a row.
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error)
}

func NewFeedbackRepository(store *infra.Store) FeedbackRepositoryInterface {
	if store.DB != nil {
		return &FeedbackRepository{db: store.DB}
	}
	return &RestFeedbackRepository{table: infra.NewRestTable[db_models.Feedback](store.Rest, db_models.Feedback{}.TableName())}
}

type FeedbackRepository struct {
	db *gorm.DB
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	return createOne(r.db.WithContext(ctx), feedback, utils.ErrEmptyInsert)
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Order("id DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// feedbackInsert is the column set the REST store accepts; id and
// created_at are generated server side.
type feedbackInsert struct {
	UserID       *int64    `json:"user_id"`
	UserVerdict  string    `json:"user_verdict"`
	FeedbackText string    `json:"feedback_text"`
	ResultID     *int64    `json:"result_id"`
	FeedbackDate time.Time `json:"feedback_date"`
}

type RestFeedbackRepository struct {
	table *infra.RestTable[db_models.Feedback]
}

func (r *RestFeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := r.table.Insert(feedbackInsert{
		UserID:       feedback.UserID,
		UserVerdict:  feedback.UserVerdict,
		FeedbackText: feedback.FeedbackText,
		ResultID:     feedback.ResultID,
		FeedbackDate: feedback.FeedbackDate,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return utils.ErrEmptyInsert
	}

	*feedback = rows[0]
	return nil
}

func (r *RestFeedbackRepository) ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.List((page-1)*pageSize, pageSize, "created_at", "id")
}

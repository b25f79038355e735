package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"factcheck/internal/infra"
	"factcheck/internal/models/db_models"
	"factcheck/internal/models/request_models"
	"factcheck/internal/repositories"
	"factcheck/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, req request_models.SubmitFeedbackRequest) (*db_models.Feedback, error)
	GetFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	metrics      *infra.Metrics
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, metrics *infra.Metrics) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, metrics: metrics, now: utils.NowUTC}
}

// SubmitFeedback inserts exactly one row per call. feedback_date is stamped
// here, never taken from the caller. Identical submissions are not merged.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, req request_models.SubmitFeedbackRequest) (*db_models.Feedback, error) {
	feedback := &db_models.Feedback{
		UserID:       req.UserID,
		UserVerdict:  string(req.UserVerdict),
		FeedbackText: req.FeedbackText,
		ResultID:     req.ResultID,
		FeedbackDate: s.now().UTC(),
	}

	log.Debug().
		Str("user_verdict", feedback.UserVerdict).
		Interface("user_id", feedback.UserID).
		Interface("result_id", feedback.ResultID).
		Msg("Inserting feedback")

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		if errors.Is(err, utils.ErrEmptyInsert) {
			s.metrics.FeedbackSubmissions.WithLabelValues("empty").Inc()
		} else {
			s.metrics.FeedbackSubmissions.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	s.metrics.FeedbackSubmissions.WithLabelValues("success").Inc()
	return feedback, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	feedbacks, err := s.feedbackRepo.ListFeedback(ctx, page, pageSize)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	if feedbacks == nil {
		feedbacks = []db_models.Feedback{}
	}
	return feedbacks, nil
}

package feedback_fx

import (
	"go.uber.org/fx"

	"factcheck/internal/infra"
	"factcheck/internal/repositories"
	"factcheck/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService,
)

func provideFeedbackRepo(store *infra.Store) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(store)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, metrics *infra.Metrics) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, metrics)
}

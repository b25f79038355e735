package analysis_fx

import (
	"go.uber.org/fx"

	"factcheck/internal/infra"
	"factcheck/internal/repositories"
	"factcheck/internal/services"
)

var Module = fx.Provide(provideAnalysisRequestRepo, provideAnalysisRequestService)

func provideAnalysisRequestRepo(store *infra.Store) repositories.AnalysisRequestRepositoryInterface {
	return repositories.NewAnalysisRequestRepository(store)
}

func provideAnalysisRequestService(repo repositories.AnalysisRequestRepositoryInterface) services.AnalysisRequestServiceInterface {
	return services.NewAnalysisRequestService(repo)
}

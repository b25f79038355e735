package controllers_fx

import (
	"go.uber.org/fx"

	"factcheck/internal/api"
	"factcheck/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAnalysisRequestController),
	fx.Provide(provideControllers))

func provideControllers(
	feedback *controllers.FeedbackController,
	account *controllers.AccountController,
	analysis *controllers.AnalysisRequestController) api.Controllers {
	return api.Controllers{Feedback: feedback, Account: account, Analysis: analysis}
}

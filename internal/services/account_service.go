package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"factcheck/internal/infra"
	"factcheck/internal/models/request_models"
	"factcheck/internal/models/response_models"
)

// AuthProvider is the external identity service. Implementations relay the
// provider's own error messages through utils.ProviderError.
type AuthProvider interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResult, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
}

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResult, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
}

type AccountService struct {
	provider AuthProvider
	metrics  *infra.Metrics
}

func NewAccountService(provider AuthProvider, metrics *infra.Metrics) AccountServiceInterface {
	return &AccountService{
		provider: provider,
		metrics:  metrics,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResult, error) {
	startTime := time.Now()
	result, err := a.provider.Register(ctx, req)
	a.observe("register", startTime, err)
	return result, err
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResult, error) {
	startTime := time.Now()
	result, err := a.provider.Login(ctx, req)
	a.observe("login", startTime, err)
	return result, err
}

func (a *AccountService) Logout(ctx context.Context, accessToken string) error {
	startTime := time.Now()
	err := a.provider.Logout(ctx, accessToken)
	a.observe("logout", startTime, err)
	return err
}

func (a *AccountService) observe(operation string, startTime time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	a.metrics.AuthRequests.WithLabelValues(operation, outcome).Inc()

	log.Debug().
		Str("operation", operation).
		Str("outcome", outcome).
		Dur("took", time.Since(startTime)).
		Msg("Auth provider call finished")
}

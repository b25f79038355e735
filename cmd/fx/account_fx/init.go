package account_fx

import (
	"go.uber.org/fx"

	"factcheck/internal/config"
	"factcheck/internal/infra"
	"factcheck/internal/services"
)

var Module = fx.Provide(
	provideAuthProvider, provideAccountService)

func provideAuthProvider(cfg *config.Config) services.AuthProvider {
	return infra.NewSupabaseAuth(cfg.Supabase.URL, cfg.Supabase.Key)
}

func provideAccountService(provider services.AuthProvider, metrics *infra.Metrics) services.AccountServiceInterface {
	return services.NewAccountService(provider, metrics)
}

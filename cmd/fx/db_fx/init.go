package db_fx

import (
	"context"

	"go.uber.org/fx"

	"factcheck/internal/config"
	"factcheck/internal/infra"
)

var Module = fx.Provide(provideStore)

func provideStore(lc fx.Lifecycle, cfg *config.Config) (*infra.Store, error) {
	store, err := infra.NewStore(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
	return store, nil
}

package config_fx

import (
	"go.uber.org/fx"

	"factcheck/internal/config"
)

var Module = fx.Provide(config.Load)

package conf

import (
	"context"
	"fmt"
)

// configKey is keyed by the config type, so the global config and
// a command config can live in the same context.
type configKey[C any] struct{}

// GetConfigFromContext returns the config of type C stored by
// ContextWithConfig.
func GetConfigFromContext[C any](ctx context.Context) (C, error) {
	config, ok := ctx.Value(configKey[C]{}).(C)
	if !ok {
		return config, fmt.Errorf("config %T not found in context", config)
	}

	return config, nil
}

func ContextWithConfig[C any](ctx context.Context, config C) context.Context {
	return context.WithValue(ctx, configKey[C]{}, config)
}

package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NamedLogger names the logger after a module and tags its entries
// with the module, so production json logs can be filtered on it.
func NamedLogger(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger {
		return log.Named(name).With(zap.String("module", name))
	}
}

// DecorateLogger renames the logger for the enclosing fx module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(NamedLogger(name))
}

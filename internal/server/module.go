package server

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module runs the http server over the handlers group for the
// lifetime of the fx app.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(_ *HttpServer, log *zap.Logger) {
			log.Debug("http server configured", zap.Stringer("address", config))
		}),
	)
}

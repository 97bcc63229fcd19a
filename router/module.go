package router

import (
	"go.uber.org/fx"

	"github.com/elide-dev/michelin-server/util/logging"
)

// Module provides the router as a Handler.
func Module(config Config) fx.Option {
	return fx.Module(
		"router",

		// provide router config
		fx.Supply(config),

		// rename logger for module
		logging.DecorateLogger("router"),

		// provide router
		fx.Provide(
			fx.Annotate(NewRouter, fx.As(new(Handler))),
		),
	)
}

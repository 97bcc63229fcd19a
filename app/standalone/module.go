package standalone

import (
	"go.uber.org/fx"

	"github.com/elide-dev/michelin-server/handler"
	"github.com/elide-dev/michelin-server/internal/server"
	"github.com/elide-dev/michelin-server/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}

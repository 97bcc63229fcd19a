package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/elide-dev/michelin-server/config"
	"github.com/elide-dev/michelin-server/internal/shell"
	"github.com/elide-dev/michelin-server/router"
	"github.com/elide-dev/michelin-server/util/conf"
	"github.com/elide-dev/michelin-server/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide router
		router.Module(config.Router),
	)

	return shell.New(log, sharedModule), nil
}

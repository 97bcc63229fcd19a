package handler

import (
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/elide-dev/michelin-server/internal/server"
)

// NewCatchAllRoute mounts the handler on every path, leaving the
// choice between a route and the not found document to the router.
func NewCatchAllRoute(handler *RouterHandler) server.HttpHandlerResult {
	reporter := sentryhttp.New(sentryhttp.Options{
		// let net/http recover and drop the connection
		Repanic: true,
	})

	return server.AsHttpHandler("/", reporter.Handle(handler))
}

package server

import (
	"net/http"

	"go.uber.org/fx"
)

const catchAllPattern = "/"

type HttpHandler struct {
	Name    string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// NewMux registers the handlers on a new mux under their names.
// A lone catch-all handler is returned as is, since the mux would
// answer paths it cleans, like "//" or "/a/../b", with a redirect.
func NewMux(handlers []*HttpHandler) http.Handler {
	if len(handlers) == 1 && handlers[0].Name == catchAllPattern {
		return handlers[0].Handler
	}

	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return mux
}

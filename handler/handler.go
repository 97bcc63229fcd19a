package handler

import (
	"net/http"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elide-dev/michelin-server/router"
)

type RouterHandlerParams struct {
	fx.In

	Handler router.Handler
	Log     *zap.Logger
}

func NewRouterHandler(params RouterHandlerParams) *RouterHandler {
	return &RouterHandler{
		handler: params.Handler,
		log:     params.Log,
	}
}

// RouterHandler serves http requests through a router.Handler.
type RouterHandler struct {
	handler router.Handler
	log     *zap.Logger
}

func (h *RouterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// the escaped path keeps "/%68ealth" from routing as "/health"
	// and invalid utf-8 like "/%ff" intact for the echo
	request := router.Request{
		Path:   r.URL.EscapedPath(),
		Method: strings.ToUpper(r.Method),
		Header: r.Header,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		h.log.Debug("failed to write response",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
	}
}

package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elide-dev/michelin-server/router/schema"
)

const (
	// PathHealth is the health check route.
	PathHealth = "/health"

	// PathInfo is the server info route.
	PathInfo = "/"

	// TimestampLayout is the layout of the health check timestamp.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// HandlerParams defines the dependencies for the router.
type HandlerParams struct {
	fx.In

	Config Config

	// Clock overrides the time source of the health check.
	Clock Clock `optional:"true"`

	Log *zap.Logger
}

type route struct {
	endpoint Endpoint
	handle   func(req Request) Response
}

// Router dispatches requests on their exact path to the health
// check, the server info document or a not found document.
type Router struct {
	config Config
	clock  Clock
	routes []route
	info   []byte
	log    *zap.Logger
}

// NewRouter creates a new router. The info document is rendered
// once and validated against its schema, so a bad config fails
// here instead of on a request.
func NewRouter(params HandlerParams) (*Router, error) {
	documentSchema, err := schema.NewDocumentSchema()
	if err != nil {
		return nil, err
	}

	r := &Router{
		config: params.Config,
		clock:  params.Clock,
		log:    params.Log,
	}

	if r.clock == nil {
		r.clock = time.Now
	}

	if r.log == nil {
		r.log = zap.NewNop()
	}

	// order defines match precedence and the endpoint listing
	r.routes = []route{
		{
			endpoint: Endpoint{Path: PathHealth, Method: http.MethodGet, Description: "Health check"},
			handle:   r.health,
		},
		{
			endpoint: Endpoint{Path: PathInfo, Method: http.MethodGet, Description: "Server info"},
			handle:   r.serverInfo,
		},
	}

	info, err := encodeJSON(infoDocument{
		Name:      params.Config.Name,
		Version:   params.Config.Version,
		Language:  params.Config.Language,
		Endpoints: r.Endpoints(),
	})
	if err != nil {
		return nil, err
	}

	if err := documentSchema.Validate(schema.DocumentInfo, info); err != nil {
		return nil, fmt.Errorf("invalid info document: %w", err)
	}

	r.info = info

	return r, nil
}

// Endpoints returns the routed endpoints in match order.
func (r *Router) Endpoints() []Endpoint {
	endpoints := make([]Endpoint, 0, len(r.routes))
	for _, route := range r.routes {
		endpoints = append(endpoints, route.endpoint)
	}

	return endpoints
}

// Handle routes the request. It always returns a response.
func (r *Router) Handle(ctx context.Context, req Request) Response {
	response := r.dispatch(req)

	r.log.Debug("handled request",
		zap.String("path", req.Path),
		zap.String("method", req.Method),
		zap.Int("status", response.StatusCode),
	)

	return response
}

func (r *Router) dispatch(req Request) Response {
	for _, route := range r.routes {
		if route.endpoint.Path == req.Path {
			return route.handle(req)
		}
	}

	return r.notFound(req)
}

func (r *Router) health(Request) Response {
	return newJSONResponse(http.StatusOK, healthDocument{
		Status:    "ok",
		Server:    r.config.Server,
		Timestamp: r.clock().UTC().Format(TimestampLayout),
	})
}

func (r *Router) serverInfo(Request) Response {
	return newResponse(http.StatusOK, r.info)
}

func (r *Router) notFound(req Request) Response {
	return newJSONResponse(http.StatusNotFound, errorDocument{
		Error: http.StatusText(http.StatusNotFound),
		Path:  req.Path,
	})
}

package lambda

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/elide-dev/michelin-server/handler"
	"github.com/elide-dev/michelin-server/internal/server"
	"github.com/elide-dev/michelin-server/router"
)

const healthBody = `{"status":"ok","server":"elide-typescript","timestamp":"2024-05-01T00:00:00.000Z"}`

func setupLambdaHandler(t *testing.T, source ProxySource) *LambdaHandler {
	r, err := router.NewRouter(router.HandlerParams{
		Config: router.Config{
			Server:   "elide-typescript",
			Name:     "Elide Michelin Server",
			Version:  "0.1.0",
			Language: "TypeScript",
		},
		Clock: func() time.Time { return time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC) },
		Log:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	route := handler.NewCatchAllRoute(handler.NewRouterHandler(handler.RouterHandlerParams{
		Handler: r,
		Log:     zaptest.NewLogger(t),
	}))

	h := NewLambdaHandler(LambdaHandlerParams{
		Config:   Config{ProxySource: source},
		Handlers: []*server.HttpHandler{route.Handler},
		Context:  context.Background(),
		Logger:   zaptest.NewLogger(t),
	})
	t.Cleanup(h.Shutdown)

	return h
}

func TestLambdaHandler_ApiGatewayV1(t *testing.T) {
	h := setupLambdaHandler(t, ProxySourceApiGatewayV1)

	fn, err := h.ProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/health",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, healthBody, res.Body)
}

func TestLambdaHandler_ApiGatewayV2(t *testing.T) {
	h := setupLambdaHandler(t, ProxySourceApiGatewayV2)

	fn, err := h.ProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error))
	require.True(t, ok)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/health", http.StatusOK, healthBody},
		{http.MethodPost, "/health", http.StatusOK, healthBody},
		{http.MethodGet, "/nope", http.StatusNotFound, `{"error":"Not Found","path":"/nope"}`},
		{http.MethodGet, "//", http.StatusNotFound, `{"error":"Not Found","path":"//"}`},
		{http.MethodGet, "/a/../nope", http.StatusNotFound, `{"error":"Not Found","path":"/a/../nope"}`},
		{http.MethodGet, "/./health", http.StatusNotFound, `{"error":"Not Found","path":"/./health"}`},
		{http.MethodGet, "/nope//x", http.StatusNotFound, `{"error":"Not Found","path":"/nope//x"}`},
		{http.MethodGet, "/%ff", http.StatusNotFound, `{"error":"Not Found","path":"/%ff"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			res, err := proxy(context.Background(), events.APIGatewayV2HTTPRequest{
				RawPath: tt.path,
				RequestContext: events.APIGatewayV2HTTPRequestContext{
					DomainName: "michelin.example.com",
					HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
						Method: tt.method,
						Path:   tt.path,
					},
				},
			})
			require.NoError(t, err)

			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, tt.body, res.Body)
			assert.NotContains(t, res.Headers, "Location")
		})
	}
}

func TestLambdaHandler_Alb(t *testing.T) {
	h := setupLambdaHandler(t, ProxySourceAlb)

	fn, err := h.ProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), events.ALBTargetGroupRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Body, `"version":"0.1.0"`)
}

func TestLambdaHandler_InvalidProxySource(t *testing.T) {
	h := setupLambdaHandler(t, ProxySource("SQS"))

	_, err := h.ProxyFunction()

	var sourceErr *ProxySourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, ProxySource("SQS"), sourceErr.ProxySource)
	assert.EqualError(t, h.Start(), "invalid proxy source: SQS")
}

package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/elide-dev/michelin-server/router"
)

// --- Mock handler ---
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, req router.Request) router.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(router.Response)
}

// --- Test ---
func TestServeHTTP_Success(t *testing.T) {
	mockHandler := new(MockHandler)

	req := httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil)
	w := httptest.NewRecorder()

	expectedResponse := router.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(`{"ok":true}`),
	}

	mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r router.Request) bool {
		return r.Path == "/health" && r.Method == http.MethodGet
	})).Return(expectedResponse)

	handler := &RouterHandler{
		handler: mockHandler,
		log:     zap.NewNop(),
	}

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(body))
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_NormalizesMethod(t *testing.T) {
	mockHandler := new(MockHandler)

	req := httptest.NewRequest("post", "/", strings.NewReader(`ignored`))
	w := httptest.NewRecorder()

	mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r router.Request) bool {
		return r.Method == http.MethodPost
	})).Return(router.Response{StatusCode: http.StatusOK})

	handler := &RouterHandler{
		handler: mockHandler,
		log:     zap.NewNop(),
	}

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_NotFound(t *testing.T) {
	mockHandler := new(MockHandler)

	req := httptest.NewRequest(http.MethodDelete, "/nope", nil)
	w := httptest.NewRecorder()

	mockHandler.On("Handle", mock.Anything, mock.Anything).Return(router.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(`{"error":"Not Found","path":"/nope"}`),
	})

	handler := &RouterHandler{
		handler: mockHandler,
		log:     zap.NewNop(),
	}

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"error":"Not Found","path":"/nope"}`, w.Body.String())
}

func TestCatchAllRoute_Router(t *testing.T) {
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

	route := NewCatchAllRoute(NewRouterHandler(RouterHandlerParams{
		Handler: r,
		Log:     zaptest.NewLogger(t),
	}))
	require.Equal(t, "/", route.Handler.Name)

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/health", http.StatusOK, `{"status":"ok","server":"elide-typescript","timestamp":"2024-05-01T00:00:00.000Z"}`},
		{http.MethodPost, "/health", http.StatusOK, `{"status":"ok","server":"elide-typescript","timestamp":"2024-05-01T00:00:00.000Z"}`},
		{http.MethodGet, "/nope", http.StatusNotFound, `{"error":"Not Found","path":"/nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			route.Handler.Handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestServeHTTP_EscapedPath(t *testing.T) {
	tests := []struct {
		target string
		path   string
	}{
		{"/%ff", "/%ff"},
		{"/%68ealth", "/%68ealth"},
		{"/a%20b", "/a%20b"},
		{"/health?x=%ff", "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			mockHandler := new(MockHandler)
			mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r router.Request) bool {
				return r.Path == tt.path
			})).Return(router.Response{StatusCode: http.StatusNotFound})

			handler := &RouterHandler{
				handler: mockHandler,
				log:     zap.NewNop(),
			}

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))

			mockHandler.AssertExpectations(t)
		})
	}
}

func TestCatchAllRoute_EncodedPaths(t *testing.T) {
	r, err := router.NewRouter(router.HandlerParams{
		Config: router.Config{
			Server:   "elide-typescript",
			Name:     "Elide Michelin Server",
			Version:  "0.1.0",
			Language: "TypeScript",
		},
		Log: zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	route := NewCatchAllRoute(NewRouterHandler(RouterHandlerParams{
		Handler: r,
		Log:     zaptest.NewLogger(t),
	}))

	for _, path := range []string{"/%ff", "/%68ealth"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			route.Handler.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, `{"error":"Not Found","path":"`+path+`"}`, w.Body.String())
		})
	}
}

func TestCatchAllRoute_Repanics(t *testing.T) {
	mockHandler := new(MockHandler)
	mockHandler.On("Handle", mock.Anything, mock.Anything).Panic("boom")

	route := NewCatchAllRoute(NewRouterHandler(RouterHandlerParams{
		Handler: mockHandler,
		Log:     zap.NewNop(),
	}))

	assert.Panics(t, func() {
		route.Handler.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

package router

import (
	"context"
	"net/http"
	"time"
)

// Request represents an incoming request.
type Request struct {
	Path   string
	Method string
	Header http.Header
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Handler is the interface for handling requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// Clock returns the current time.
type Clock func() time.Time

// Endpoint describes a route published in the info document.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type healthDocument struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Timestamp string `json:"timestamp"`
}

type infoDocument struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Language  string     `json:"language"`
	Endpoints []Endpoint `json:"endpoints"`
}

type errorDocument struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

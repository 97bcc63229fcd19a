package router

// Config is the identity the router publishes.
type Config struct {
	// Server is reported by the health check.
	Server string `conf:"server"`

	// Name is the server name in the info document.
	Name string `conf:"name"`

	// Version is the server version in the info document.
	Version string `conf:"version"`

	// Language is the implementation language in the info document.
	Language string `conf:"language"`
}

// DefaultConfig holds the default router configuration, keyed
// relative to the router namespace.
var DefaultConfig = map[string]any{
	"server":   "elide-typescript",
	"name":     "Elide Michelin Server",
	"version":  "0.1.0",
	"language": "TypeScript",
}

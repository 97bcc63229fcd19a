package util

import (
	"os"
	"strings"
)

var truthyValues = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"on":   true,
}

// Truthy reports whether s spells an enabled switch.
func Truthy(s string) bool {
	return truthyValues[strings.ToLower(strings.TrimSpace(s))]
}

// EnvTruthy reports whether the environment variable key is set to
// a truthy value.
func EnvTruthy(key string) bool {
	return Truthy(os.Getenv(key))
}

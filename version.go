package hecto

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the editor version string.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

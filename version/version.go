package version

import (
	"bytes"
	_ "embed"
)

//go:embed VERSION.txt
var build []byte

// Build returns the embedded release version.
func Build() string {
	return string(bytes.TrimSpace(build))
}

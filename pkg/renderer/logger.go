package renderer

import (
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, keeping the
// progress side channel out of the pixel stream on stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// silentLogger discards all output; used when no progress reporting is wanted
type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

// NewSilentLogger creates a logger that discards all output
func NewSilentLogger() core.Logger {
	return silentLogger{}
}

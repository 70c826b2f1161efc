package platform

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

// SetLogger sets the logger used by the package. It is silent by default.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "platform").Logger()
	logger.Store(&l)
}

func log() *zerolog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

package pool

import (
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	stringpool "github.com/ajitpratap0/opalloc/pkg/strings"
)

// Reporter is the failure sink invoked on every failure path, before the
// operation returns its error. The site argument is the file:line inside
// the engine where the failure was detected.
type Reporter func(site, msg string)

// DefaultReporter receives failures on pools built without WithReporter,
// and failures that cannot be attributed to any constructed pool (nil
// handles). It is a no-op unless replaced.
var DefaultReporter Reporter = func(site, msg string) {}

// LogReporter adapts a zap logger into a Reporter that logs failures at
// warn level.
func LogReporter(l *zap.Logger) Reporter {
	return func(site, msg string) {
		l.Warn(msg, zap.String("site", site))
	}
}

// callsite returns file:line skip frames above the caller.
func callsite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return stringpool.Sprintf("%s:%d", filepath.Base(file), line)
}

// reporter resolves the sink for a possibly-nil pool.
func (p *Pool) reporter() Reporter {
	if p != nil && p.report != nil {
		return p.report
	}
	return DefaultReporter
}

package internal

import "github.com/osuushi/polytri/internal/dbg"

// Config carries everything a pipeline stage needs besides its input. It is
// passed by value; stages never keep global state.
type Config struct {
	Tolerance Tolerance
	// Strict turns broken preconditions (a missing left edge, a face that is
	// not a triangle) into errors instead of skipping the offending step.
	Strict bool
	Trace  *dbg.Tracer
}

func DefaultConfig() Config {
	return Config{Tolerance: DefaultEpsilon}
}

// fail reports a broken precondition. In strict mode it panics with a
// TriangulateError; otherwise the step is traced and the caller carries on.
func (c Config) fail(stage, format string, args ...interface{}) {
	if c.Strict {
		fatalf(stage+": "+format, args...)
	}
	c.Trace.Warnf(stage, format, args...)
}

package dbg

import (
	"fmt"
	"log"

	"github.com/logrusorgru/aurora"
)

// Tracer writes stage-tagged diagnostics. A nil *Tracer is valid and silent,
// so stages can call it unconditionally.
type Tracer struct {
	logger *log.Logger
	au     aurora.Aurora
}

func NewTracer(logger *log.Logger, colors bool) *Tracer {
	if logger == nil {
		return nil
	}
	return &Tracer{logger: logger, au: aurora.NewAurora(colors)}
}

func (t *Tracer) Enabled() bool {
	return t != nil
}

func (t *Tracer) Tracef(stage, format string, args ...interface{}) {
	if t == nil {
		return
	}
	t.logger.Printf("%s %s", t.au.Cyan(fmt.Sprintf("[%s]", stage)), fmt.Sprintf(format, args...))
}

// Warnf reports a skipped step.
func (t *Tracer) Warnf(stage, format string, args ...interface{}) {
	if t == nil {
		return
	}
	t.logger.Printf("%s %s %s", t.au.Cyan(fmt.Sprintf("[%s]", stage)), t.au.Yellow("skip:"), fmt.Sprintf(format, args...))
}

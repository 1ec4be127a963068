package dbg

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct{ id int }

	a := Name(key{1})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(key{1}), "names are memoized")
	assert.Equal(t, "Ø", Name(nil))

	var p *int
	assert.Equal(t, "Ø", Name(p))
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewTracer(log.New(&buf, "", 0), false)
	assert.True(t, tracer.Enabled())

	tracer.Tracef("resolve", "%d events", 3)
	tracer.Warnf("decompose", "no left edge")
	assert.Equal(t, "[resolve] 3 events\n[decompose] skip: no left edge\n", buf.String())
}

func TestNilTracer(t *testing.T) {
	var tracer *Tracer
	assert.False(t, tracer.Enabled())
	assert.NotPanics(t, func() {
		tracer.Tracef("resolve", "ignored")
		tracer.Warnf("resolve", "ignored")
	})
	assert.Nil(t, NewTracer(nil, true))
}

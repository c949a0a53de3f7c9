package galgo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	o := defaultOptions()
	assert.NotNil(t, o.logger)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.parallelism)

	WithParallelism(0)(&o)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.parallelism)

	WithParallelism(3)(&o)
	assert.Equal(t, 3, o.parallelism)

	WithLogger(nil)(&o)
	assert.NotNil(t, o.logger)

	l := NewTextLogger(0)
	WithLogger(l)(&o)
	assert.Same(t, l, o.logger)
}

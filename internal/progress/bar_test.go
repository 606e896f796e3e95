package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBarAdvance(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, "Running simulations", 4)
	start := b.start
	b.now = func() time.Time { return start.Add(90 * time.Second) }

	b.Advance(1)
	b.Advance(1)
	require.Equal(t, 2, b.Done())

	frames := strings.Split(buf.String(), "\r")
	last := frames[len(frames)-1]
	require.Equal(t, "Running simulations [====================>                   ] 2/4  50.0% 1m30s", last)
}

func TestBarClampsAndFinishes(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, "x", 2)
	b.Advance(5)
	require.Equal(t, 2, b.Done())
	b.Finish()
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
	require.Contains(t, buf.String(), "["+strings.Repeat("=", defaultWidth)+"] 2/2 100.0%")
}

func TestBarZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "empty", 0)
	require.Contains(t, buf.String(), "0/0 100.0%")
}

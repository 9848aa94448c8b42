package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestElapsed(t *testing.T) {
	tm := New()
	time.Sleep(10 * time.Millisecond)
	e := tm.Elapsed()
	require.GreaterOrEqual(t, e, 0.01)
	require.Less(t, e, 1.0)
}

func TestReset(t *testing.T) {
	tm := New()
	time.Sleep(10 * time.Millisecond)
	tm.Reset()
	require.Less(t, tm.Elapsed(), 0.01)
}

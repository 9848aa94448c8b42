package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtonCountsEdges(t *testing.T) {
	var b Button
	b.SetState(true)
	b.SetState(true) // held, not an edge
	b.SetState(false)
	require.True(t, !b.IsPressed)
	require.EqualValues(t, 2, b.NumStateTransitions)

	b.ClearTransitions()
	require.EqualValues(t, 0, b.NumStateTransitions)
}

func TestClearButtonTransitions(t *testing.T) {
	var in Input
	in.MouseButtonLeft.SetState(true)
	in.MouseButtonRight.SetState(true)
	in.MouseWheelDelta = -3

	in.ClearButtonTransitions()
	require.EqualValues(t, 0, in.MouseButtonLeft.NumStateTransitions)
	require.EqualValues(t, 0, in.MouseButtonRight.NumStateTransitions)
	require.EqualValues(t, 0, in.MouseWheelDelta)
	// pressed state survives the per-frame clear, only edges reset
	require.True(t, in.MouseButtonLeft.IsPressed)
}

func TestClearFlags(t *testing.T) {
	in := Input{
		HotreloadHappened:   true,
		DoReinitGamestate:   true,
		DoReinitDrawstate:   true,
		DirectScreenDrawing: true,
	}
	in.ClearFlags()
	require.False(t, in.HotreloadHappened)
	require.False(t, in.DoReinitGamestate)
	require.False(t, in.DoReinitDrawstate)
	// a settings toggle, not a one-shot flag
	require.True(t, in.DirectScreenDrawing)
}

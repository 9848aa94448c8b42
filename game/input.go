package game

type (
	//Vec2 is a 2d vector in screen space.
	Vec2 struct {
		X float32
		Y float32
	}

	//Button is one digital input with edge counting, so a tick can tell a
	//held button from one pressed and released within the same frame.
	Button struct {
		NumStateTransitions uint32
		IsPressed           bool
	}

	/*Input is the per-frame host to module payload.

	It crosses the module boundary by pointer every tick, so it must stay a
	flat value type: fixed size fields only, no maps, slices or interface
	values. Both sides are compiled from this very definition, which is the
	whole layout contract.
	*/
	Input struct {
		ScreenDim Vec2

		MouseButtonLeft   Button
		MouseButtonMiddle Button
		MouseButtonRight  Button
		MousePosScreen    Vec2

		// Positive moves away from the user, negative towards them.
		MouseWheelDelta int32

		TimeSinceStartup float64
		TimeDelta        float32
		TimeUpdate       float32
		TimeDraw         float32

		HotreloadHappened   bool
		DoReinitGamestate   bool
		DoReinitDrawstate   bool
		DirectScreenDrawing bool
	}
)

// SetState records a press or release, counting the edge when the state
// actually changed.
func (b *Button) SetState(isPressed bool) {
	if b.IsPressed != isPressed {
		b.NumStateTransitions++
		b.IsPressed = isPressed
	}
}

// ClearTransitions resets the edge counter for the next frame.
func (b *Button) ClearTransitions() {
	b.NumStateTransitions = 0
}

// ClearButtonTransitions resets all button edge counters and the wheel delta,
// called by the host at the end of every frame.
func (in *Input) ClearButtonTransitions() {
	in.MouseButtonLeft.ClearTransitions()
	in.MouseButtonMiddle.ClearTransitions()
	in.MouseButtonRight.ClearTransitions()
	in.MouseWheelDelta = 0
}

// ClearFlags resets the one-shot frame flags, called by the host at the end
// of every frame.
func (in *Input) ClearFlags() {
	in.HotreloadHappened = false
	in.DoReinitGamestate = false
	in.DoReinitDrawstate = false
}

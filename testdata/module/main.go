// Sample game module. Build it into the artifact the runtime hot-reloads:
//
//	modbuild build --dir target --name game ./testdata/module
//
// Entry points take unsafe pointers because cgo export signatures must stay
// C-representable, the casts below are the module half of the fixed layout
// contract with the host.
package main

import "C"

import (
	"math"
	"unsafe"

	"github.com/quadrated/hotlib/game"
)

//export update_and_draw
func update_and_draw(in, state unsafe.Pointer) {
	input := (*game.Input)(in)
	st := (*game.State)(state)

	if !st.IsInitialized || input.DoReinitGamestate {
		st.IsInitialized = true
		st.FrameIndex = 0
	}
	st.ScreenDim = input.ScreenDim
	st.MousePosScreen = input.MousePosScreen
	st.FrameIndex++
}

//export process_audio
func process_audio(in, state unsafe.Pointer, samples *float32, sampleCount int32) {
	st := (*game.State)(state)
	buf := unsafe.Slice(samples, int(sampleCount))

	// 440Hz test tone, phase continued across frames via FrameIndex
	const rate = 44100.0
	base := float64(st.FrameIndex) * float64(sampleCount)
	for i := range buf {
		buf[i] = float32(0.1 * math.Sin(2*math.Pi*440*(base+float64(i))/rate))
	}
	_ = (*game.Input)(in)
}

func main() {}

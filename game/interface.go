// Package game is the host facing call surface of a hot-reloadable game
// module: the boundary value types and one typed adapter per exported entry
// point. The adapters are the single place where the unchecked symbol
// signature assumption lives, call sites stay fully typed.
package game

import (
	"github.com/quadrated/hotlib"
)

// Exported entry point names every module must provide. Fixed and versionless
// by agreement between host and module, across all reloads.
const (
	SymUpdateAndDraw = "update_and_draw"
	SymProcessAudio  = "process_audio"
)

type (
	updateAndDrawFn = func(in *Input, state *State)
	processAudioFn  = func(in *Input, state *State, samples *float32, sampleCount int32)
)

// Interface forwards typed calls into the current generation of a module.
// Resolution happens per call, so a reload between two frames is picked up
// transparently.
type Interface struct {
	Lib *hotlib.Library
}

// UpdateAndDraw forwards to the module's update_and_draw entry point,
// advancing and rendering one frame. A module missing the symbol panics, it
// is unusable to this host.
func (g Interface) UpdateAndDraw(in *Input, state *State) {
	hotlib.Func[updateAndDrawFn](g.Lib, SymUpdateAndDraw)(in, state)
}

// ProcessAudio forwards to the module's process_audio entry point, filling
// samples with the next audio chunk.
func (g Interface) ProcessAudio(in *Input, state *State, samples []float32) {
	if len(samples) == 0 {
		return
	}
	hotlib.Func[processAudioFn](g.Lib, SymProcessAudio)(in, state, &samples[0], int32(len(samples)))
}

package game

// State is the game state the host owns and threads through every module
// call. The host never interprets it beyond construction, the module is free
// to reinitialize it when Input.DoReinitGamestate is set. Same layout rule as
// Input: flat fields only, the definition itself is the contract.
type State struct {
	IsInitialized bool

	ScreenDim      Vec2
	MousePosScreen Vec2
	MousePosWorld  Vec2

	CanvasWidth  int32
	CanvasHeight int32

	FrameIndex uint64
}

// NewState returns state for a fresh session, canvas dimensions match the
// fixed pixel-art canvas the module renders to.
func NewState() *State {
	return &State{
		CanvasWidth:  480,
		CanvasHeight: 270,
	}
}

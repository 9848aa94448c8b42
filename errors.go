package hotlib

import "errors"

var (
	// ErrMissingSymbol occurs when the current generation does not export a required symbol.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrArtifactBusy occurs when the external builder holds the artifact build lock.
	ErrArtifactBusy = errors.New("artifact locked by builder")
)

// Package api defines public API contracts for wob-shm.
package api

// Surface is a pixel buffer backed by a shared memory object.
type Surface interface {
	// Fd is the descriptor the display layer maps.
	Fd() int
	Destroy() error
}

// Bar is a progress bar that can be redrawn in place.
type Bar interface {
	Render(percentage, maximum uint64) error
	Fd() int
	Close() error
}

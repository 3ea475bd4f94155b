// Package shm contains platform-specific helpers for anonymous shared memory mappings.
package shm

import (
	"errors"
	"fmt"
)

const (
	// DefaultDir is where POSIX shared memory objects live on Linux.
	DefaultDir = "/dev/shm"
	// DefaultPrefix is the name prefix probed for new objects.
	DefaultPrefix = "wob"
	// DefaultProbeLimit bounds the number of candidate names tried.
	DefaultProbeLimit = 255
)

var (
	// ErrNameSpaceExhausted is returned when every candidate name is taken.
	ErrNameSpaceExhausted = errors.New("no free shared memory name")
	// ErrNoSpaceLeft is returned when the shm filesystem cannot hold the region.
	ErrNoSpaceLeft = errors.New("share memory had not left space")
	// ErrInvalidSize is returned for non-positive region sizes.
	ErrInvalidSize = errors.New("invalid region size")
	// ErrUnsupported is returned on platforms without a shm implementation.
	ErrUnsupported = errors.New("shared memory not supported on this platform")
)

// MappedRegion represents a memory-mapped shared region.
type MappedRegion struct {
	Addr []byte
	Fd   int
	Size int
	// Name is the transient object name; it is unlinked before MapAnonymous returns.
	Name string
}

// MapOptions defines options for mapping anonymous shared memory.
type MapOptions struct {
	Dir        string
	Prefix     string
	ProbeLimit int
	Size       int
}

func (o MapOptions) withDefaults() MapOptions {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.ProbeLimit <= 0 {
		o.ProbeLimit = DefaultProbeLimit
	}
	return o
}

// OpError records the system call that failed while building a region.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s() failed: %s", e.Op, e.Err.Error())
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Function implementations are provided in platform-specific files (platform_linux.go, platform_other.go).

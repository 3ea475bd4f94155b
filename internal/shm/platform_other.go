//go:build !linux

package shm

import (
	"context"
)

// MapAnonymous is not implemented outside Linux.
func MapAnonymous(ctx context.Context, opts MapOptions) (*MappedRegion, error) {
	return nil, &OpError{Op: "shm_open", Err: ErrUnsupported}
}

// UnmapRegion is a no-op outside Linux.
func UnmapRegion(ctx context.Context, region *MappedRegion) error {
	return nil
}

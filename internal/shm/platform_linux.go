//go:build linux

package shm

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// swapped in tests
var (
	ftruncate = unix.Ftruncate
	mmap      = unix.Mmap
)

// MapAnonymous creates a shared memory object under an unused name, unlinks
// the name right away and maps the object read/write. The returned region is
// reachable only through its descriptor.
func MapAnonymous(ctx context.Context, opts MapOptions) (region *MappedRegion, err error) {
	if opts.Size <= 0 {
		return nil, &OpError{Op: "size", Err: fmt.Errorf("%w: %d bytes", ErrInvalidSize, opts.Size)}
	}
	opts = opts.withDefaults()
	if err := ctx.Err(); err != nil {
		return nil, &OpError{Op: "context", Err: err}
	}

	fd, path, err := createExclusive(opts.Dir, opts.Prefix, opts.ProbeLimit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = unix.Close(fd)
		}
	}()

	if err = unix.Unlink(path); err != nil {
		return nil, &OpError{Op: "shm_unlink", Err: err}
	}

	ok, err := canCreate(opts.Dir, uint64(opts.Size))
	if err != nil {
		return nil, &OpError{Op: "statfs", Err: err}
	}
	if !ok {
		err = &OpError{Op: "ftruncate", Err: fmt.Errorf("%w: dir %s, size %d", ErrNoSpaceLeft, opts.Dir, opts.Size)}
		return nil, err
	}

	if err = ftruncate(fd, int64(opts.Size)); err != nil {
		return nil, &OpError{Op: "ftruncate", Err: err}
	}

	addr, err := mmap(fd, 0, opts.Size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, &OpError{Op: "mmap", Err: err}
	}
	return &MappedRegion{
		Addr: addr,
		Fd:   fd,
		Size: opts.Size,
		Name: filepath.Base(path),
	}, nil
}

// UnmapRegion unmaps the region and closes its descriptor.
func UnmapRegion(ctx context.Context, region *MappedRegion) error {
	if region == nil || region.Addr == nil {
		return nil
	}
	if err := unix.Munmap(region.Addr); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	region.Addr = nil
	if err := unix.Close(region.Fd); err != nil {
		return fmt.Errorf("close fd %d: %w", region.Fd, err)
	}
	region.Fd = -1
	return nil
}

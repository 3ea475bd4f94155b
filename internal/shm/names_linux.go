//go:build linux

package shm

import (
	"errors"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"
)

// createExclusive probes <dir>/<prefix>-0 ... <prefix>-<limit-1> until an
// exclusive create succeeds. Only EEXIST moves the probe on.
func createExclusive(dir, prefix string, limit int) (fd int, path string, err error) {
	for i := 0; i < limit; i++ {
		path = filepath.Join(dir, prefix+"-"+strconv.Itoa(i))
		fd, err = unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0600)
		if err == nil {
			return fd, path, nil
		}
		if !errors.Is(err, unix.EEXIST) {
			return -1, "", &OpError{Op: "shm_open", Err: err}
		}
	}
	return -1, "", &OpError{Op: "shm_open", Err: ErrNameSpaceExhausted}
}

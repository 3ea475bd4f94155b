package shm

import (
	"github.com/shirou/gopsutil/v3/disk"
)

// canCreate reports whether the filesystem under dir has room for size bytes.
func canCreate(dir string, size uint64) (bool, error) {
	stat, err := disk.Usage(dir)
	if err != nil {
		return false, err
	}
	return stat.Free >= size, nil
}

// FreeSpace returns the free bytes of the filesystem backing dir.
func FreeSpace(dir string) (uint64, error) {
	if dir == "" {
		dir = DefaultDir
	}
	stat, err := disk.Usage(dir)
	if err != nil {
		return 0, err
	}
	return stat.Free, nil
}

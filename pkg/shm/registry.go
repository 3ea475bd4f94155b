package shm

import (
	"strconv"
	"sync/atomic"

	cmap "github.com/orcaman/concurrent-map/v2"

	internalshm "github.com/srediag/wob-shm/internal/shm"
)

// MappingInfo describes a live buffer.
type MappingInfo struct {
	Fd   int
	Size int
	Name string
}

var (
	nextID   atomic.Uint64
	registry = cmap.New[*Buffer]()
)

func register(b *Buffer) uint64 {
	id := nextID.Add(1)
	registry.Set(strconv.FormatUint(id, 10), b)
	return id
}

func unregister(id uint64) {
	registry.Remove(strconv.FormatUint(id, 10))
}

// Live returns the number of buffers opened and not yet closed.
func Live() int {
	return registry.Count()
}

// LiveMappings returns a snapshot of the buffers not yet closed.
func LiveMappings() []MappingInfo {
	var out []MappingInfo
	registry.IterCb(func(_ string, b *Buffer) {
		b.mu.Lock()
		if b.region != nil {
			out = append(out, MappingInfo{Fd: b.region.Fd, Size: b.region.Size, Name: b.region.Name})
		}
		b.mu.Unlock()
	})
	return out
}

// FreeSpace returns the free bytes of the filesystem shm objects are created
// on; dir defaults to /dev/shm.
func FreeSpace(dir string) (uint64, error) {
	return internalshm.FreeSpace(dir)
}

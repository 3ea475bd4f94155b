package shm

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Workiva/go-datastructures/queue"
)

var (
	ErrNoFreeFrame     = errors.New("no free frame")
	ErrFrameNotInUse   = errors.New("frame released twice")
	ErrInvalidFrameCnt = errors.New("invalid frame count")
)

// Frame is one equally sized slice of a buffer's pixel words.
type Frame struct {
	Index  int
	Offset int // in words from the start of the mapping
	Pixels []uint32
	used   bool
}

// FramePool hands out the frames of a buffer, e.g. a front and a back frame
// of a double-sized reservation.
type FramePool struct {
	mu     sync.Mutex
	frames []*Frame
	free   *queue.RingBuffer
}

// Frames splits the buffer into n frames of equal size.
func (b *Buffer) Frames(n int) (*FramePool, error) {
	if n <= 0 {
		return nil, ErrInvalidFrameCnt
	}
	words := b.Words()
	if words == nil {
		return nil, ErrBufferClosed
	}
	per := len(words) / n
	if per == 0 {
		return nil, fmt.Errorf("%w: %d frames over %d words", ErrInvalidFrameCnt, n, len(words))
	}
	p := &FramePool{
		frames: make([]*Frame, n),
		free:   queue.NewRingBuffer(uint64(n)),
	}
	for i := 0; i < n; i++ {
		f := &Frame{Index: i, Offset: i * per, Pixels: words[i*per : (i+1)*per : (i+1)*per]}
		p.frames[i] = f
		if err := p.free.Put(f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Acquire takes a free frame, waiting up to timeout. A zero timeout waits forever.
func (p *FramePool) Acquire(timeout time.Duration) (*Frame, error) {
	item, err := p.free.Poll(timeout)
	if err != nil {
		if errors.Is(err, queue.ErrTimeout) {
			return nil, ErrNoFreeFrame
		}
		return nil, err
	}
	f := item.(*Frame)
	p.mu.Lock()
	f.used = true
	p.mu.Unlock()
	return f, nil
}

// Release returns a frame to the pool.
func (p *FramePool) Release(f *Frame) error {
	p.mu.Lock()
	if !f.used {
		p.mu.Unlock()
		return ErrFrameNotInUse
	}
	f.used = false
	p.mu.Unlock()
	return p.free.Put(f)
}

// Frame returns frame i regardless of its state.
func (p *FramePool) Frame(i int) *Frame {
	return p.frames[i]
}

// Free returns the number of frames available.
func (p *FramePool) Free() int {
	return int(p.free.Len())
}

// Close wakes any waiter with an error and makes the pool unusable.
func (p *FramePool) Close() {
	p.free.Dispose()
}

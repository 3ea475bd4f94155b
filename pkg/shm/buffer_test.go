package shm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

type BufferTestSuite struct {
	suite.Suite
	dir string
}

func (s *BufferTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *BufferTestSuite) open(size int) *Buffer {
	buf, err := Open(context.Background(), OpenOptions{
		Size:   size,
		Dir:    s.dir,
		Meter:  metricnoop.NewMeterProvider().Meter("test"),
		Tracer: tracenoop.NewTracerProvider().Tracer("test"),
	})
	s.Require().NoError(err)
	return buf
}

func (s *BufferTestSuite) TestOpenAndClose() {
	before := Live()
	buf := s.open(4096)
	s.Equal(before+1, Live())
	s.Equal(4096, buf.Size())
	s.Len(buf.Bytes(), 4096)
	s.Len(buf.Words(), 1024)
	s.GreaterOrEqual(buf.Fd(), 0)

	found := false
	for _, m := range LiveMappings() {
		if m.Fd == buf.Fd() {
			found = true
			s.Equal(4096, m.Size)
			s.Equal("wob-0", m.Name)
		}
	}
	s.True(found)

	buf.Words()[1023] = 0xffffffff
	s.Require().NoError(buf.Close())
	s.Equal(before, Live())
	s.Nil(buf.Bytes())
	s.Equal(-1, buf.Fd())
	s.Equal(0, buf.Size())
	s.NoError(buf.Close())
}

func (s *BufferTestSuite) TestNameSpaceExhausted() {
	for i := 0; i < 2; i++ {
		s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "wob-"+strconv.Itoa(i)), nil, 0600))
	}
	before := Live()
	buf, err := Open(context.Background(), OpenOptions{Size: 64, Dir: s.dir, ProbeLimit: 2})
	s.Nil(buf)
	s.Require().Error(err)

	var aerr *AllocationError
	s.Require().True(errors.As(err, &aerr))
	s.Equal("shm_open", aerr.Op)
	s.ErrorIs(err, ErrNameSpaceExhausted)
	s.Equal(before, Live())
}

func (s *BufferTestSuite) TestInvalidSize() {
	_, err := Open(context.Background(), OpenOptions{Size: 0, Dir: s.dir})
	s.ErrorIs(err, ErrInvalidSize)
	var aerr *AllocationError
	s.Require().True(errors.As(err, &aerr))
	s.Equal("size", aerr.Op)
}

func (s *BufferTestSuite) TestFrames() {
	buf := s.open(64)
	defer buf.Close()

	pool, err := buf.Frames(2)
	s.Require().NoError(err)
	defer pool.Close()
	s.Equal(2, pool.Free())
	s.Len(pool.Frame(0).Pixels, 8)
	s.Equal(8, pool.Frame(1).Offset)

	front, err := pool.Acquire(time.Second)
	s.Require().NoError(err)
	back, err := pool.Acquire(time.Second)
	s.Require().NoError(err)
	s.NotEqual(front.Index, back.Index)
	s.Equal(0, pool.Free())

	_, err = pool.Acquire(10 * time.Millisecond)
	s.ErrorIs(err, ErrNoFreeFrame)

	back.Pixels[0] = 7
	s.Equal(uint32(7), buf.Words()[back.Offset])

	s.Require().NoError(pool.Release(back))
	s.ErrorIs(pool.Release(back), ErrFrameNotInUse)
	s.Equal(1, pool.Free())
}

func (s *BufferTestSuite) TestFramesInvalid() {
	buf := s.open(8)
	_, err := buf.Frames(0)
	s.ErrorIs(err, ErrInvalidFrameCnt)
	_, err = buf.Frames(3)
	s.ErrorIs(err, ErrInvalidFrameCnt)
	s.Require().NoError(buf.Close())
	_, err = buf.Frames(1)
	s.ErrorIs(err, ErrBufferClosed)
}

func TestBufferTestSuite(t *testing.T) {
	suite.Run(t, new(BufferTestSuite))
}

func TestAllocationErrorMessage(t *testing.T) {
	err := &AllocationError{Op: "mmap", Err: errors.New("cannot allocate memory")}
	assert.Equal(t, "mmap() failed: cannot allocate memory", err.Error())
	require.Equal(t, "cannot allocate memory", errors.Unwrap(err).Error())
}

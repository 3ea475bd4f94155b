// Package shm provides anonymous shared memory buffers for handing pixel data
// to an external consumer such as a compositor surface.
//
// A buffer is created under a probed name (/dev/shm/wob-N), unlinked at once
// and kept alive only by its descriptor, so no other process can open it by
// name. The descriptor is what gets passed on.
//
// This package is instrumented with OpenTelemetry metrics and tracing (OTel Go SDK v1.30.0).
//
// Example usage:
//
//	buf, err := shm.Open(ctx, shm.OpenOptions{
//	  Size:   width * height * 8,
//	  Meter:  myMeter,
//	  Tracer: myTracer,
//	})
//	if err != nil {
//	  // err is an *shm.AllocationError
//	}
//	defer buf.Close()
//	pixels := buf.Words()
//
// Platform-specific helpers are in internal/shm.
package shm

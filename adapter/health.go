// Package adapter provides adapters for wob-shm integration with external systems.
package adapter

import (
	"fmt"

	"github.com/heptiolabs/healthcheck"

	"github.com/srediag/wob-shm/pkg/shm"
)

// HealthOptions tune the checks registered by NewHealthHandler.
type HealthOptions struct {
	// Dir is the shm directory to watch, /dev/shm by default.
	Dir string
	// MinFree is the free space, in bytes, below which the process is not live.
	MinFree uint64
	// MaxMappings is the number of live mappings above which the process is
	// not ready. Zero disables the check.
	MaxMappings int
}

// NewHealthHandler returns a healthcheck handler with a shm-space liveness
// check and a shm-mappings readiness check.
func NewHealthHandler(opts HealthOptions) healthcheck.Handler {
	h := healthcheck.NewHandler()
	h.AddLivenessCheck("shm-space", func() error {
		free, err := shm.FreeSpace(opts.Dir)
		if err != nil {
			return err
		}
		if free < opts.MinFree {
			return fmt.Errorf("%w: %d bytes free, want %d", shm.ErrNoSpaceLeft, free, opts.MinFree)
		}
		return nil
	})
	h.AddReadinessCheck("shm-mappings", func() error {
		if opts.MaxMappings > 0 && shm.Live() > opts.MaxMappings {
			return fmt.Errorf("%d live mappings, limit %d", shm.Live(), opts.MaxMappings)
		}
		return nil
	})
	return h
}

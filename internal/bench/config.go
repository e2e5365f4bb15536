// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"

	"code.hybscloud.com/interleave"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("bench: invalid config")

// ErrChecksum is returned when a traversal sum differs from the ground truth.
var ErrChecksum = errors.New("bench: checksum mismatch")

// Config describes one benchmark run.
type Config struct {
	// Traveller selects the strategy, see interleave.ParseTraveller.
	Traveller string

	// Repetitions is the number of timed traversals per worker.
	Repetitions int

	// Warmup is the number of untimed traversals before the first timed one.
	Warmup int

	// ArraySize is the number of cells per list.
	ArraySize int

	// GroupSize is the number of lists traversed together.
	GroupSize int

	// Seed makes list construction deterministic; 0 means random.
	Seed uint64

	// Parallel is the number of independent workers.
	Parallel int

	// CPU pins worker w to CPU+w; negative disables pinning.
	CPU int
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Traveller:   "async",
		Repetitions: 3,
		ArraySize:   interleave.DefaultListSize,
		GroupSize:   interleave.DefaultGroupSize,
		Parallel:    1,
		CPU:         -1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Traveller == "":
		return fmt.Errorf("%w: traveller is required", ErrInvalidConfig)
	case c.Repetitions < 1:
		return fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidConfig, c.Repetitions)
	case c.Warmup < 0:
		return fmt.Errorf("%w: warmup must be >= 0, got %d", ErrInvalidConfig, c.Warmup)
	case c.ArraySize < 1:
		return fmt.Errorf("%w: array size must be >= 1, got %d", ErrInvalidConfig, c.ArraySize)
	case c.GroupSize < 1:
		return fmt.Errorf("%w: group size must be >= 1, got %d", ErrInvalidConfig, c.GroupSize)
	case c.Parallel < 1:
		return fmt.Errorf("%w: parallel must be >= 1, got %d", ErrInvalidConfig, c.Parallel)
	}
	if _, err := interleave.ParseTraveller(c.Traveller, c.GroupSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

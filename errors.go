// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a task has not finished yet.
//
// For Fetch.Poll: the fetch is still in flight
// For Task.Advance: the task suspended and must be polled again
//
// ErrWouldBlock is a control flow signal, not a failure. The Executor keeps
// a task that returns it in its slot and polls it again on the next sweep.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	for {
//	    sum, err := task.Advance()
//	    if err == nil {
//	        return sum
//	    }
//	    if interleave.IsWouldBlock(err) {
//	        continue // Poll again
//	    }
//	    return err
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrCapacityExceeded is returned by Executor.Spawn when every slot is
// occupied. The executor never grows beyond its construction-time capacity.
var ErrCapacityExceeded = errors.New("interleave: executor capacity exceeded")

// ErrBrokenCycle is returned by List.Verify when following next indices from
// index 0 does not visit every index exactly once before returning to 0.
var ErrBrokenCycle = errors.New("interleave: list is not a single cycle")

// ErrUnknownTraveller is returned by ParseTraveller for an unrecognised name.
var ErrUnknownTraveller = errors.New("interleave: unknown traveller")

// IsWouldBlock reports whether err indicates a task is still pending.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package interleave

// RaceEnabled is true when the race detector is active.
// Used by tests to shrink workloads that are slow under instrumentation.
const RaceEnabled = true

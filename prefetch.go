// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import (
	"unsafe"

	"code.hybscloud.com/interleave/internal/asm"
)

// PrefetchAvailable reports whether Prefetch compiles to a hardware
// instruction on this architecture. When false, Prefetch is a no-op.
const PrefetchAvailable = asm.Available

// Prefetch hints the CPU to start loading the cache line holding p.
//
// It never blocks, never faults and has no effect on program results.
func Prefetch(p unsafe.Pointer) {
	asm.Prefetch(p)
}

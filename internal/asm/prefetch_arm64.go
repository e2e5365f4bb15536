// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asm

import "unsafe"

// Available reports whether Prefetch emits a hardware instruction.
const Available = true

// Prefetch issues PRFM PLDL1KEEP for the cache line containing p.
//
//go:noescape
//go:nosplit
func Prefetch(p unsafe.Pointer)

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides architecture-specific helpers for hot paths.
//
// Prefetch issues a read prefetch into all cache levels for the line
// containing the given address. It never faults, never blocks and has no
// observable effect other than timing. Architectures without an
// implementation get a no-op and report Available == false.
package asm

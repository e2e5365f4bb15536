// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package bench

import "runtime"

const affinitySupported = false

// pinThread only locks the goroutine to its OS thread; CPU binding is not
// available on this platform.
func pinThread(cpu int) (func(), error) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread, nil
}

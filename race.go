// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package msq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip scenarios that synchronize through atomix
// orderings (SpinLock, tombstone flags), which the detector cannot track.
const RaceEnabled = true

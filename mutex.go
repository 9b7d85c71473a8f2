// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Mutex is the mutual-exclusion capability serializing the queue's shared
// state: the global list, tombstone writes, reclamation, and iteration.
//
// The queue requires Lock and Unlock; TryLock backs the try-variants of
// reclamation. *sync.Mutex satisfies Mutex. The capability is not
// interruptible — once an operation starts waiting it waits until the lock
// is granted.
type Mutex interface {
	Lock()
	Unlock()
	TryLock() bool
}

// SpinLock is a non-reentrant spin-based Mutex.
//
// Critical sections in the queue are short (a splice or a list walk), so
// spinning with CPU pause beats parking for the common uncontended case.
// The zero value is an unlocked SpinLock.
//
// Iteration holds the lock for as long as the caller keeps its LockedRange
// open; prefer *sync.Mutex via WithMutex when iterations are long-lived.
type SpinLock struct {
	_      pad
	locked atomix.Bool
	_      pad
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for !l.locked.CompareAndSwapAcqRel(false, true) {
		sw.Once()
	}
}

// TryLock acquires the lock without spinning.
// Returns false if the lock is held by someone else.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwapAcqRel(false, true)
}

// Unlock releases the lock.
// Must only be called by the holder.
func (l *SpinLock) Unlock() {
	l.locked.StoreRelease(false)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

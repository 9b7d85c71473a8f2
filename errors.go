// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrStorageExhausted indicates the backing Storage refused an allocation.
//
// Raised from Producer.Insert (and the AllocNew helpers) when a metered
// Storage such as BoundedStorage is out of budget. The producer and the
// queue remain valid; no node is added. The caller may free elements
// (Erase + ApplyDeletions) and retry.
var ErrStorageExhausted = errors.New("msq: storage exhausted")

// ErrWouldBlock indicates a try-operation could not take the queue mutex.
//
// Returned by TryApplyDeletions while a publish, iteration, or another
// reclamation holds the lock. It is a control flow signal, not a failure:
// retry later, typically from the next collection cycle.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
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
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package alloctest provides instrumented Storage implementations for
// verifying the queue's ownership contracts in tests.
package alloctest

import (
	"sync"

	"code.hybscloud.com/msq"
)

// CountingStorage is a msq.Storage that tracks outstanding reservations.
//
// Every Allocate is one outstanding block until the matching Deallocate.
// After a queue and its producers are closed, Blocks must return to zero if
// every allocation was paired with a reclamation.
type CountingStorage struct {
	mu     sync.Mutex
	blocks int
	bytes  uintptr
	limit  int // -1: unlimited
}

// NewCountingStorage creates an unlimited counting storage.
func NewCountingStorage() *CountingStorage {
	return &CountingStorage{limit: -1}
}

// SetLimit makes Allocate fail with msq.ErrStorageExhausted once n blocks
// are outstanding. A negative n removes the limit.
func (s *CountingStorage) SetLimit(n int) {
	s.mu.Lock()
	s.limit = n
	s.mu.Unlock()
}

// Allocate records an outstanding block of n bytes.
func (s *CountingStorage) Allocate(n uintptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit >= 0 && s.blocks >= s.limit {
		return msq.ErrStorageExhausted
	}
	s.blocks++
	s.bytes += n
	return nil
}

// Deallocate returns a block of n bytes.
func (s *CountingStorage) Deallocate(n uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocks <= 0 || s.bytes < n {
		panic("alloctest: deallocate without matching allocate")
	}
	s.blocks--
	s.bytes -= n
}

// Blocks returns the number of outstanding allocations.
func (s *CountingStorage) Blocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocks
}

// Bytes returns the number of outstanding bytes.
func (s *CountingStorage) Bytes() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bytes
}

// StubStorage delegates to its function fields, for targeted failure
// injection. Nil fields succeed silently.
type StubStorage struct {
	AllocateFunc   func(n uintptr) error
	DeallocateFunc func(n uintptr)
}

func (s *StubStorage) Allocate(n uintptr) error {
	if s.AllocateFunc == nil {
		return nil
	}
	return s.AllocateFunc(n)
}

func (s *StubStorage) Deallocate(n uintptr) {
	if s.DeallocateFunc != nil {
		s.DeallocateFunc(n)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

// config collects the queue's pluggable capabilities.
type config struct {
	mutex   Mutex
	storage Storage
}

// Option configures a queue at construction.
//
// Example:
//
//	// Metered nodes, OS-futex mutex for long-lived iterations
//	st := msq.NewBoundedStorage(1 << 20)
//	q := msq.NewQueue[Root](
//	    msq.WithStorage(st),
//	    msq.WithMutex(new(sync.Mutex)),
//	)
type Option func(*config)

// WithMutex selects the mutual-exclusion capability serializing the global
// list. Defaults to a SpinLock.
//
// Panics if mu is nil.
func WithMutex(mu Mutex) Option {
	if mu == nil {
		panic("msq: nil mutex")
	}
	return func(c *config) { c.mutex = mu }
}

// WithStorage selects the Storage backing node allocation. The queue
// rebinds a typed adapter for its internal node type from it; adapters the
// caller creates on the same Storage share its accounting.
//
// Defaults to the unmetered Go heap. Panics if s is nil.
func WithStorage(s Storage) Option {
	if s == nil {
		panic("msq: nil storage")
	}
	return func(c *config) { c.storage = s }
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package msq provides an unbounded multi-source queue: a concurrent
// collection fed by many per-goroutine producers and scanned by a single
// reader over a stable, globally ordered sequence.
//
// The structure backs runtime-style tracking registries — live objects,
// handles, GC roots — where every worker constantly appends and
// occasionally deletes, while a collector needs an uninterrupted,
// allocation-free walk over the union of everyone's contributions.
//
// # Quick Start
//
//	q := msq.NewQueue[int]()
//
//	// Each worker goroutine owns one producer.
//	p := msq.NewProducer(q)
//	defer p.Close() // publishes anything still pending
//
//	n, err := p.Insert(42) // local, lock-free
//	if err != nil {
//	    // metered Storage refused the node
//	}
//	p.Publish() // one atomic splice makes the batch visible
//
//	// The reader walks a stable snapshot under the queue mutex.
//	r := q.LockForIter()
//	for v := range r.Values() {
//	    visit(v)
//	}
//	r.Close()
//
//	p.Erase(n)          // tombstone; n stays linked
//	q.ApplyDeletions()  // unlink and free tombstoned nodes
//
// # Publication Protocol
//
// Inserts land on the producer's private pending list. Nothing about a
// pending node is visible to the queue: iteration does not see it and no
// lock is taken for it. Publish splices the whole pending list onto the
// global list's tail in one critical section, so each publication appears
// to the reader as a contiguous run in insertion order. Runs from distinct
// producers are ordered by mutex acquisition, nothing more.
//
// # Erasure and Tombstones
//
// Erase accepts a node handle from any producer of the same queue — this is
// the multi-source property. Two paths:
//
//   - The node is still pending on the erasing producer itself: it is
//     unlinked and freed immediately, without locking.
//   - Every other case (published, or pending on another producer): the
//     node's tombstone is set under the queue mutex. Iteration skips
//     tombstoned nodes wherever they are; the storage is reclaimed by the
//     next ApplyDeletions after the node reaches the global list.
//
// A tombstone set on a node pending on another producer becomes observable
// exactly when that producer publishes: the node enters the global list
// already dead and is never yielded.
//
// # Reclamation
//
// ApplyDeletions walks the global list under the mutex, unlinking every
// tombstoned node and returning its storage to the allocator. It is
// idempotent and linearized with iteration: once it returns, no later
// iteration sees the reclaimed nodes. TryApplyDeletions is the
// non-blocking variant, returning ErrWouldBlock instead of waiting —
// useful when a collector would rather skip a cycle than stall behind
// publishing mutators.
//
// # Iteration
//
// LockForIter trades reader latency for zero-copy stable iteration: the
// returned LockedRange holds the queue mutex until Close, and producers
// calling Publish during that time block. Values yields live elements in
// global order; Nodes yields the handles themselves for a later Erase.
//
// # Custom Storage
//
// Node storage is pluggable through the byte-granular Storage capability
// and its typed Adapter facade:
//
//	st := msq.NewBoundedStorage(64 << 10)
//	q := msq.NewQueue[Obj](msq.WithStorage(st))
//
// Adapters rebound from the same Storage share its accounting, and the
// AllocNew / AllocUnique helpers keep the strong guarantee: a failed
// initialization returns the reservation before the error propagates.
//
// # Mutex Capability
//
// The queue serializes shared state through the Mutex capability (Lock,
// Unlock, TryLock). The default SpinLock suits the short critical sections
// of publish and reclamation; pass *sync.Mutex via WithMutex when
// iterations are long enough that spinning waiters would burn cores.
//
// # Thread Safety
//
// A producer and its pending list belong to a single goroutine; Insert and
// same-producer pending Erase never synchronize, and nothing outside that
// goroutine may touch the producer. The global list and every tombstone are
// mutated only under the queue mutex. Close the producers first, then the
// queue; Close on the queue requires no live producers and no open range.
//
// # Race Detection
//
// SpinLock and the tombstone flag synchronize through atomix operations
// with explicit memory orderings. The Go race detector cannot observe
// happens-before edges established that way and reports false positives on
// correct runs; tests that exercise those paths concurrently skip themselves
// when RaceEnabled is true, and the concurrent examples are built only
// under //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions, and [code.hybscloud.com/iox] for semantic errors.
package msq

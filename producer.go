// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

// Producer is a goroutine-owned handle that feeds a MultiSourceQueue.
//
// A producer accumulates inserted nodes in a private pending list and makes
// them globally visible in one atomic splice with Publish. The pending list
// is owned exclusively by the producer's goroutine: Insert and same-producer
// Erase of a pending node never synchronize. Everything else — Publish,
// cross-producer Erase, erasing an already published node — goes through the
// queue mutex.
//
// Producers are not copyable and must not be shared between goroutines.
// Close publishes whatever is still pending, so no node is ever lost to a
// forgotten Publish:
//
//	p := msq.NewProducer(q)
//	defer p.Close()
type Producer[T any] struct {
	noCopy noCopy

	queue *MultiSourceQueue[T]
	head  *Node[T]
	tail  *Node[T]
}

// NewProducer binds a new producer to q.
//
// Any number of producers may be bound to the same queue; each must stay on
// a single goroutine. All producers must be closed before the queue is.
func NewProducer[T any](q *MultiSourceQueue[T]) *Producer[T] {
	if q == nil {
		panic("msq: nil queue")
	}
	return &Producer[T]{queue: q}
}

// Insert allocates a node for value and appends it to the pending list.
//
// The returned handle may be passed to Erase on any producer of the same
// queue and stays valid until the node is reclaimed. On storage refusal the
// error propagates and the producer is left unchanged.
//
// Insert takes no locks.
func (p *Producer[T]) Insert(value T) (*Node[T], error) {
	q := p.ensureOpen()
	n, err := q.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	n.value = value
	n.owner = p
	p.append(n)
	return n, nil
}

// InsertFunc allocates a node and initializes its element with init.
//
// If init fails, the node's storage is returned to the allocator before the
// error propagates; the pending list is unchanged. A nil init leaves the
// element zeroed.
func (p *Producer[T]) InsertFunc(init func(*T) error) (*Node[T], error) {
	q := p.ensureOpen()
	n, err := q.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	if init != nil {
		if err := init(&n.value); err != nil {
			q.alloc.Deallocate(n)
			return nil, err
		}
	}
	n.owner = p
	p.append(n)
	return n, nil
}

// Erase logically deletes the node behind handle n.
//
// If n is still in this producer's own pending list it is unlinked and
// freed immediately, without locking. In every other case — n was inserted
// by another producer, or it has already been published — Erase sets the
// node's tombstone under the queue mutex; the node stays linked until a
// later ApplyDeletions reclaims it.
//
// Erase accepts handles from any producer bound to the same queue.
// Tombstoning twice is a no-op; erasing a handle that was already freed by
// a same-producer erase is a usage error with undefined behavior.
func (p *Producer[T]) Erase(n *Node[T]) {
	q := p.ensureOpen()
	if n == nil {
		panic("msq: nil node handle")
	}
	if n.owner == p && p.unlinkPending(n) {
		q.alloc.Deallocate(n)
		return
	}
	q.mu.Lock()
	n.deleted.StoreRelease(true)
	q.mu.Unlock()
}

// Publish splices the pending list onto the tail of the global list.
//
// The splice is atomic under the queue mutex: an iteration either sees all
// of this publication or none of it, and the published run keeps insertion
// order. Publishing with nothing pending is a valid no-op that still takes
// the mutex.
func (p *Producer[T]) Publish() {
	q := p.ensureOpen()
	q.mu.Lock()
	if p.head != nil {
		if q.tail == nil {
			q.head = p.head
		} else {
			q.tail.next = p.head
		}
		q.tail = p.tail
	}
	q.mu.Unlock()
	p.head = nil
	p.tail = nil
}

// Close publishes any remaining pending nodes and severs the producer from
// its queue. Further use of the producer panics. Close is idempotent.
func (p *Producer[T]) Close() {
	if p.queue == nil {
		return
	}
	p.Publish()
	p.queue = nil
}

func (p *Producer[T]) ensureOpen() *MultiSourceQueue[T] {
	q := p.queue
	if q == nil {
		panic("msq: producer used after Close")
	}
	return q
}

// append links n onto the pending tail. Caller's goroutine only.
func (p *Producer[T]) append(n *Node[T]) {
	if p.tail == nil {
		p.head = n
	} else {
		p.tail.next = n
	}
	p.tail = n
}

// unlinkPending removes n from the pending list if present.
// Caller's goroutine only; reports whether n was found.
func (p *Producer[T]) unlinkPending(n *Node[T]) bool {
	var prev *Node[T]
	for cur := p.head; cur != nil; cur = cur.next {
		if cur != n {
			prev = cur
			continue
		}
		if prev == nil {
			p.head = cur.next
		} else {
			prev.next = cur.next
		}
		if p.tail == cur {
			p.tail = prev
		}
		return true
	}
	return false
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import "code.hybscloud.com/atomix"

// Node is the intrusive element holder of a MultiSourceQueue.
//
// A node is created by Producer.Insert and lives until it is reclaimed:
// immediately, when its owning producer erases it before publication, or by
// ApplyDeletions / MultiSourceQueue.Close after it reached the global list.
// The handle stays valid for Erase and Value until then. Handles are not
// portable between queues.
//
// A node is linked into exactly one list at a time: its owning producer's
// pending list before publication, the queue's global list after. The two
// phases are disjoint, so a single link field serves both.
type Node[T any] struct {
	value T
	next  *Node[T]
	owner *Producer[T]

	// deleted is the tombstone. Any producer of the queue may set it at any
	// point after Insert returns; iteration and reclamation honor it once
	// the node is in the global list. Never cleared.
	deleted atomix.Bool
}

// Value returns the node's element.
//
// The queue never mutates the element after Insert, and reading through the
// returned pointer is safe while the caller otherwise guarantees the node
// has not been reclaimed.
func (n *Node[T]) Value() *T { return &n.value }

// noCopy triggers go vet's copylocks check on types that must not be copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

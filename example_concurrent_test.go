// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that publish from several goroutines through
// the SpinLock. SpinLock synchronizes with atomix memory orderings, which
// appear as plain accesses to Go's race detector. The examples are correct;
// they're excluded from race testing.

package msq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/msq"
)

// ExampleNewProducer demonstrates per-goroutine producers feeding one
// queue, with a collector pass over the union of their contributions.
func ExampleNewProducer() {
	q := msq.NewQueue[int]()

	var wg sync.WaitGroup
	for worker := range 3 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			p := msq.NewProducer(q)
			defer p.Close() // publishes the batch
			p.Insert(worker * 10)
			p.Insert(worker*10 + 1)
		}(worker)
	}
	wg.Wait()

	sum := 0
	r := q.LockForIter()
	for v := range r.Values() {
		sum += v
	}
	r.Close()

	fmt.Println("sum:", sum)

	// Output:
	// sum: 63
}

// ExampleMultiSourceQueue_TryApplyDeletions demonstrates a collector that
// skips reclamation instead of stalling behind an open iteration.
func ExampleMultiSourceQueue_TryApplyDeletions() {
	q := msq.NewQueue[int]()
	p := msq.NewProducer(q)
	defer p.Close()

	n, _ := p.Insert(7)
	p.Publish()
	p.Erase(n)

	r := q.LockForIter()
	if err := q.TryApplyDeletions(); msq.IsWouldBlock(err) {
		fmt.Println("busy, retry next cycle")
	}
	r.Close()

	if err := q.TryApplyDeletions(); err == nil {
		fmt.Println("reclaimed")
	}

	// Output:
	// busy, retry next cycle
	// reclaimed
}

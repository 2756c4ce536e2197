// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pqueue implements the two-key, coord-indexed priority queue
// described in spec.md §4.2: a single indexed binary heap (container/heap
// plus a coord→slot index) so the "index and ordered multiset stay
// consistent" invariant is structurally enforced, rather than relying on
// a separately-maintained contains-map as some copies of the source do
// (spec.md §9).
package pqueue

import (
	"container/heap"

	"github.com/byuldev/byulnav/coord"
)

type item struct {
	c coord.Coord
	k Key
}

// Queue is a min-priority-queue of coords ordered by Key, indexed by
// coord so Contains/KeyOf/Remove are O(1)/O(log n).
type Queue struct {
	items  []item
	lookup map[coord.Coord]int
}

// queueHeap is Queue's container/heap adapter, kept separate because
// Queue's own Push/Pop take coords and keys.
type queueHeap Queue

// New returns an empty queue.
func New() *Queue {
	return &Queue{
		lookup: make(map[coord.Coord]int),
	}
}

// heap.Interface

func (q *Queue) Len() int { return len(q.items) }

func (q *queueHeap) Len() int { return len(q.items) }

func (q *queueHeap) Less(i, j int) bool {
	return q.items[i].k.Less(q.items[j].k)
}

func (q *queueHeap) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.lookup[q.items[i].c] = i
	q.lookup[q.items[j].c] = j
}

func (q *queueHeap) Push(x any) {
	it := x.(item)
	q.lookup[it.c] = len(q.items)
	q.items = append(q.items, it)
}

func (q *queueHeap) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	delete(q.lookup, it.c)
	q.items = old[:n-1]
	return it
}

// Contract methods named per spec.md §4.2.

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool {
	return len(q.items) == 0
}

// Contains reports whether c currently has an entry in the queue.
func (q *Queue) Contains(c coord.Coord) bool {
	_, ok := q.lookup[c]
	return ok
}

// KeyOf returns c's current key, and whether c is present.
func (q *Queue) KeyOf(c coord.Coord) (Key, bool) {
	i, ok := q.lookup[c]
	if !ok {
		return Key{}, false
	}
	return q.items[i].k, true
}

// Top returns the coord with the smallest key, without removing it.
func (q *Queue) Top() (coord.Coord, bool) {
	if len(q.items) == 0 {
		return coord.Coord{}, false
	}
	return q.items[0].c, true
}

// TopKey returns the smallest key in the queue.
func (q *Queue) TopKey() (Key, bool) {
	if len(q.items) == 0 {
		return Key{}, false
	}
	return q.items[0].k, true
}

// Push inserts c with priority k. If c is already present, its key is
// updated in place (equivalent to Update in the D* Lite paper's pseudocode).
func (q *Queue) Push(c coord.Coord, k Key) {
	if i, ok := q.lookup[c]; ok {
		if q.items[i].k.Compare(k) == 0 {
			return
		}
		q.items[i].k = k
		heap.Fix((*queueHeap)(q), i)
		return
	}
	heap.Push((*queueHeap)(q), item{c: c, k: k})
}

// Pop removes and returns the coord with the smallest key.
func (q *Queue) Pop() (coord.Coord, bool) {
	if len(q.items) == 0 {
		return coord.Coord{}, false
	}
	it := heap.Pop((*queueHeap)(q)).(item)
	return it.c, true
}

// Remove deletes c from the queue regardless of its key. Returns false if
// c was not present.
func (q *Queue) Remove(c coord.Coord) bool {
	i, ok := q.lookup[c]
	if !ok {
		return false
	}
	heap.Remove((*queueHeap)(q), i)
	return true
}

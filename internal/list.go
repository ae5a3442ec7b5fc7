package internal

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is a fork of container/list

import (
	"errors"
	"fmt"
)

var ErrCorrupted = errors.New("list corrupted")

// List is a circular doubly linked list whose root element is a sentinel
// that never carries a value. The list does not keep a count; Len walks it.
type List[V any] struct {
	root Element[V]
}

func New[V any]() *List[V] {
	var n = &List[V]{}
	n.Init()
	return n
}

func (l *List[V]) Init() *List[V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *List[V]) Empty() bool {
	return l.root.next == &l.root
}

// Singular reports whether the list holds exactly one element.
func (l *List[V]) Singular() bool {
	return !l.Empty() && l.root.next == l.root.prev
}

// Len is O(n).
func (l *List[V]) Len() int {
	var n = 0
	for e := l.root.next; e != &l.root; e = e.next {
		n++
	}
	return n
}

func (l *List[V]) Front() *Element[V] {
	if l.Empty() {
		return nil
	}
	return l.root.next
}

func (l *List[V]) Back() *Element[V] {
	if l.Empty() {
		return nil
	}
	return l.root.prev
}

func (l *List[V]) insert(e, at *Element[V]) *Element[V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	return e
}

func (l *List[V]) remove(e *Element[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
}

func (l *List[V]) move(e, at *Element[V]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// Unlink removes e from l and hands it back untouched. The caller owns it
// afterwards.
func (l *List[V]) Unlink(e *Element[V]) *Element[V] {
	if e.list == l {
		l.remove(e)
	}
	return e
}

// PushFront links an unlinked element right after the root.
func (l *List[V]) PushFront(e *Element[V]) *Element[V] {
	if e.list != nil {
		return nil
	}
	return l.insert(e, &l.root)
}

// PushBack links an unlinked element right after the last element.
func (l *List[V]) PushBack(e *Element[V]) *Element[V] {
	if e.list != nil {
		return nil
	}
	return l.insert(e, l.root.prev)
}

// MoveAfter unlinks e and links it again right after mark.
func (l *List[V]) MoveAfter(e, mark *Element[V]) {
	if e.list != l || e == mark || mark.list != l {
		return
	}
	l.move(e, mark)
}

// Range calls f for every element from front to back until f returns false.
// f must not unlink the element it is given; use RangeSafe for that.
func (l *List[V]) Range(f func(e *Element[V]) bool) {
	for e := l.root.next; e != &l.root; e = e.next {
		if !f(e) {
			return
		}
	}
}

// RangeSafe is like Range but tolerates f unlinking the current element.
func (l *List[V]) RangeSafe(f func(e *Element[V]) bool) {
	for e, next := l.root.next, l.root.next.next; e != &l.root; e, next = next, next.next {
		if !f(e) {
			return
		}
	}
}

// Reverse flips next and prev on every node, the root included.
func (l *List[V]) Reverse() {
	if l.Empty() || l.Singular() {
		return
	}
	var e = &l.root
	for {
		e.next, e.prev = e.prev, e.next
		e = e.next
		if e == &l.root {
			return
		}
	}
}

// Check walks the list once and reports the first broken link it meets.
func (l *List[V]) Check() error {
	if l.root.next == nil || l.root.prev == nil {
		return fmt.Errorf("%w: root is not initialized", ErrCorrupted)
	}
	var n = 0
	for e := &l.root; ; e = e.next {
		var next = e.next
		if next == nil {
			return fmt.Errorf("%w: nil next at position %d", ErrCorrupted, n)
		}
		if next.prev != e {
			return fmt.Errorf("%w: prev of position %d does not point back", ErrCorrupted, n+1)
		}
		if next == &l.root {
			return nil
		}
		if next.list != l {
			return fmt.Errorf("%w: position %d belongs to another list", ErrCorrupted, n+1)
		}
		n++
	}
}

package internal

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is a fork of container/list

type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// Next returns the next list element or nil.
func (e *Element[V]) Next() *Element[V] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[V]) Prev() *Element[V] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Linked reports whether e currently belongs to a list.
func (e *Element[V]) Linked() bool {
	return e.list != nil
}

// Release drops the payload and every link held by an unlinked element.
// It does nothing while e is still part of a list.
func (e *Element[V]) Release() {
	if e.list != nil {
		return
	}
	var zero V
	e.Value = zero
	e.next = nil
	e.prev = nil
}

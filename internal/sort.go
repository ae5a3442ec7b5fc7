package internal

// Sort orders l ascending by compare without allocating or freeing any
// element. Equal elements keep their relative order.
//
// The list is linearized first: the root is detached and the elements form a
// nil terminated chain linked through next only. Runs of width 1, 2, 4, ...
// are merged bottom-up, then the root is attached again and every prev link
// is rebuilt in one forward pass.
func (l *List[V]) Sort(compare func(a, b V) int) {
	if l.Empty() || l.Singular() {
		return
	}

	l.root.prev.next = nil
	l.root.next = mergeSort(l.root.next, compare)

	var p = &l.root
	for ; p.next != nil; p = p.next {
		p.next.prev = p
	}
	p.next = &l.root
	l.root.prev = p
}

func mergeSort[V any](head *Element[V], compare func(a, b V) int) *Element[V] {
	var n = 0
	for e := head; e != nil; e = e.next {
		n++
	}

	var dummy Element[V]
	dummy.next = head
	for width := 1; width < n; width *= 2 {
		var tail = &dummy
		var cur = dummy.next
		for cur != nil {
			var left = cur
			var right = split(left, width)
			cur = split(right, width)
			var merged, last = merge(left, right, compare)
			tail.next = merged
			tail = last
		}
	}
	return dummy.next
}

// split cuts the chain after its first n elements and returns the rest.
func split[V any](head *Element[V], n int) *Element[V] {
	for i := 1; head != nil && i < n; i++ {
		head = head.next
	}
	if head == nil {
		return nil
	}
	var rest = head.next
	head.next = nil
	return rest
}

// merge joins two sorted chains and returns the head and tail of the result.
// Ties go to left.
func merge[V any](left, right *Element[V], compare func(a, b V) int) (*Element[V], *Element[V]) {
	var dummy Element[V]
	var tail = &dummy
	for left != nil && right != nil {
		if compare(left.Value, right.Value) <= 0 {
			tail.next = left
			left = left.next
		} else {
			tail.next = right
			right = right.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}
	for tail.next != nil {
		tail = tail.next
	}
	return dummy.next, tail
}

package squeue

// Sort orders the queue ascending. Values that compare equal keep their
// relative order, so sorting a sorted queue moves nothing.
func (q *Queue) Sort() {
	if q.absent() {
		return
	}
	q.list.Sort(q.compare)
	q.verify("sort")
}

// Sorted reports whether the queue is in ascending order.
func (q *Queue) Sorted() bool {
	if q.absent() {
		return true
	}
	var sorted = true
	q.list.Range(func(e *Element) bool {
		if next := e.Next(); next != nil && q.compare(e.Value, next.Value) > 0 {
			sorted = false
		}
		return sorted
	})
	return sorted
}

package squeue

import "go.uber.org/zap"

// DeleteMid deletes the element at index ⌊n/2⌋ (0-based) of a queue of n
// elements, so the fourth of six goes.
func (q *Queue) DeleteMid() error {
	if q.absent() {
		return ErrNilQueue
	}
	if q.list.Empty() {
		return ErrEmpty
	}

	var n = q.list.Len()
	var e = q.list.Front()
	for i := 0; i < n/2; i++ {
		e = e.Next()
	}
	q.delete(e)
	q.verify("delete mid")
	return nil
}

// DeleteDup deletes every value that occurs more than once, keeping only the
// values that were unique. The queue must already be sorted.
//
// The last element of a run of equal values is kept aside as held until a
// different value shows up, so a run longer than two is matched against it
// rather than against its already deleted neighbour.
func (q *Queue) DeleteDup() error {
	if q.absent() {
		return ErrNilQueue
	}
	if q.list.Empty() || q.list.Singular() {
		return nil
	}

	var held *Element
	var deleted = 0
	for cur := q.list.Front(); cur != nil; {
		var next = cur.Next()
		if held != nil && q.compare(held.Value, cur.Value) == 0 {
			q.delete(cur)
			deleted++
			cur = next
			continue
		}
		if next != nil && q.compare(cur.Value, next.Value) == 0 {
			var after = next.Next()
			Release(held)
			held = q.list.Unlink(cur)
			q.delete(next)
			deleted += 2
			cur = after
			continue
		}
		cur = next
	}
	Release(held)

	q.logger.Debug("duplicates deleted", zap.Int("count", deleted))
	q.verify("delete dup")
	return nil
}

// Swap exchanges the positions of every two adjacent elements. With an odd
// count the last element stays where it is.
func (q *Queue) Swap() {
	if q.absent() || q.list.Empty() || q.list.Singular() {
		return
	}
	for first := q.list.Front(); first != nil; first = first.Next() {
		var second = first.Next()
		if second == nil {
			break
		}
		q.list.MoveAfter(first, second)
	}
	q.verify("swap")
}

// Reverse reverses the queue in place.
func (q *Queue) Reverse() {
	if q.absent() {
		return
	}
	q.list.Reverse()
	q.verify("reverse")
}

// Package squeue is a queue of owned strings kept on a circular doubly
// linked list with a sentinel root.
//
// A nil *Queue, or one that has been freed, is treated as absent: queries
// on it return zero values and mutations fail with ErrNilQueue.
//
// Removing an element unlinks it and hands it to the caller, who releases it
// with Release. Deleting unlinks and releases in one step.
//
// A Queue is not safe for concurrent use.
package squeue

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
	"github.com/smartwalle/squeue/internal"
	"go.uber.org/zap"
)

var (
	ErrNilQueue = errors.New("squeue: nil queue")
	ErrAlloc    = errors.New("squeue: allocation failed")
	ErrEmpty    = errors.New("squeue: empty queue")
)

type Element = internal.Element[string]

type Queue struct {
	*option
	id   uuid.UUID
	list *internal.List[string]
}

// New returns an empty queue, or nil when the allocator refuses the queue.
func New(opts ...Option) *Queue {
	var opt = newOption(opts...)
	if !opt.alloc(AllocQueue) {
		opt.logger.Debug("allocation failed", zap.Stringer("kind", AllocQueue))
		return nil
	}

	var q = &Queue{}
	q.option = opt
	q.id = uuid.New()
	q.logger = opt.logger.With(zap.Stringer("queue", q.id))
	q.list = internal.New[string]()
	q.logger.Debug("queue created")
	return q
}

// Free releases every element still in the queue. The queue is absent
// afterwards.
func (q *Queue) Free() {
	if q.absent() {
		return
	}
	var n = 0
	q.list.RangeSafe(func(e *Element) bool {
		q.delete(e)
		n++
		return true
	})
	q.list = nil
	q.logger.Debug("queue freed", zap.Int("released", n))
}

// Release frees an element returned by RemoveHead or RemoveTail. Elements
// that are still linked are left alone.
func Release(e *Element) {
	if e == nil {
		return
	}
	e.Release()
}

// ID identifies the queue in log entries.
func (q *Queue) ID() uuid.UUID {
	if q == nil {
		return uuid.Nil
	}
	return q.id
}

func (q *Queue) absent() bool {
	return q == nil || q.list == nil
}

func (q *Queue) newElement(s string) (*Element, error) {
	if q.absent() {
		return nil, ErrNilQueue
	}
	if !q.alloc(AllocElement) {
		q.logger.Debug("allocation failed", zap.Stringer("kind", AllocElement))
		return nil, ErrAlloc
	}
	var e = &Element{}
	if !q.alloc(AllocValue) {
		Release(e)
		q.logger.Debug("allocation failed", zap.Stringer("kind", AllocValue), zap.Int("len", len(s)))
		return nil, ErrAlloc
	}
	e.Value = strings.Clone(s)
	return e, nil
}

// InsertHead links a copy of s at the front. It returns ErrNilQueue for an
// absent queue and ErrAlloc, leaving the queue unchanged, when allocation fails.
func (q *Queue) InsertHead(s string) error {
	var e, err = q.newElement(s)
	if err != nil {
		return err
	}
	q.list.PushFront(e)
	q.verify("insert head")
	return nil
}

// InsertTail links a copy of s at the back. Errors are those of InsertHead.
func (q *Queue) InsertTail(s string) error {
	var e, err = q.newElement(s)
	if err != nil {
		return err
	}
	q.list.PushBack(e)
	q.verify("insert tail")
	return nil
}

// RemoveHead unlinks the first element and returns it without releasing it.
// When sp is not empty, up to len(sp)-1 bytes of the value are copied into
// it followed by a 0 byte. It returns nil for an absent or empty queue.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q.absent() || q.list.Empty() {
		return nil
	}
	return q.remove(q.list.Front(), sp, "remove head")
}

// RemoveTail is RemoveHead for the last element.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q.absent() || q.list.Empty() {
		return nil
	}
	return q.remove(q.list.Back(), sp, "remove tail")
}

func (q *Queue) remove(e *Element, sp []byte, op string) *Element {
	q.list.Unlink(e)
	copyValue(sp, e.Value)
	q.verify(op)
	return e
}

func copyValue(sp []byte, s string) {
	if len(sp) == 0 {
		return
	}
	var n = copy(sp[:len(sp)-1], s)
	sp[n] = 0
}

// delete unlinks e and releases it.
func (q *Queue) delete(e *Element) {
	q.list.Unlink(e)
	Release(e)
}

// Size walks the queue; it is O(n).
func (q *Queue) Size() int {
	if q.absent() {
		return 0
	}
	return q.list.Len()
}

// Front returns the first element, or nil for an absent or empty queue.
func (q *Queue) Front() *Element {
	if q.absent() {
		return nil
	}
	return q.list.Front()
}

// Back returns the last element, or nil for an absent or empty queue.
func (q *Queue) Back() *Element {
	if q.absent() {
		return nil
	}
	return q.list.Back()
}

// All yields the values from front to back.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q.absent() {
			return
		}
		q.list.Range(func(e *Element) bool {
			return yield(e.Value)
		})
	}
}

// Values copies the values into a new slice, front to back.
func (q *Queue) Values() []string {
	var values = make([]string, 0)
	for v := range q.All() {
		values = append(values, v)
	}
	return values
}

// String renders the queue as [a b c], or NULL when it is absent.
func (q *Queue) String() string {
	if q.absent() {
		return "NULL"
	}
	return fmt.Sprintf("%v", q.Values())
}

// Check reports whether the links of the queue are consistent.
func (q *Queue) Check() error {
	if q.absent() {
		return ErrNilQueue
	}
	return q.list.Check()
}

func (q *Queue) verify(op string) {
	if !q.check {
		return
	}
	if err := q.list.Check(); err != nil {
		q.logger.Error("queue corrupted", zap.String("op", op), zap.Error(err))
	}
}

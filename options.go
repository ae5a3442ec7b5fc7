package squeue

import (
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

type AllocKind int

const (
	AllocQueue AllocKind = iota
	AllocElement
	AllocValue
)

func (k AllocKind) String() string {
	switch k {
	case AllocQueue:
		return "queue"
	case AllocElement:
		return "element"
	case AllocValue:
		return "value"
	}
	return "unknown"
}

// Allocator is asked before the queue allocates anything. Returning false
// makes that allocation fail.
type Allocator func(kind AllocKind) bool

func alwaysAlloc(AllocKind) bool {
	return true
}

// FailEvery fails every n-th allocation, counting all kinds together.
func FailEvery(n int) Allocator {
	var count = 0
	return func(AllocKind) bool {
		if n <= 0 {
			return true
		}
		count++
		return count%n != 0
	}
}

// FailRandom fails roughly percent out of every hundred allocations.
func FailRandom(percent int, seed int64) Allocator {
	var r = rand.New(rand.NewSource(seed))
	return func(AllocKind) bool {
		return r.Intn(100) >= percent
	}
}

type Option func(opt *option)

func WithLogger(logger *zap.Logger) Option {
	return func(opt *option) {
		opt.logger = logger
	}
}

func WithAllocator(alloc Allocator) Option {
	return func(opt *option) {
		opt.alloc = alloc
	}
}

// WithComparer replaces strings.Compare as the order used by Sort and
// DeleteDup.
func WithComparer(compare func(a, b string) int) Option {
	return func(opt *option) {
		opt.compare = compare
	}
}

// WithCheck verifies the links of the whole queue after every mutation and
// logs any violation at error level.
func WithCheck(check bool) Option {
	return func(opt *option) {
		opt.check = check
	}
}

type option struct {
	logger  *zap.Logger
	alloc   Allocator
	compare func(a, b string) int
	check   bool
}

func newOption(opts ...Option) *option {
	var opt = &option{}
	for _, o := range opts {
		if o != nil {
			o(opt)
		}
	}
	if opt.logger == nil {
		opt.logger = zap.NewNop()
	}
	if opt.alloc == nil {
		opt.alloc = alwaysAlloc
	}
	if opt.compare == nil {
		opt.compare = strings.Compare
	}
	return opt
}

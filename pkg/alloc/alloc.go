// Package alloc accounts for the storage handed out to records.
//
// The Go runtime owns the heap, so an Allocator does not return memory. It
// decides whether a request of a given size may proceed and tracks what has
// been returned. This is what lets callers bound the memory a process spends
// on records and lets tests force allocation exhaustion.
package alloc

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrExhausted is returned when storage for a request cannot be obtained.
	ErrExhausted = errors.New("allocator exhausted")
	// ErrInvalidSize is returned for zero or negative request sizes.
	ErrInvalidSize = errors.New("invalid allocation size")
)

// Allocator reserves and releases storage measured in bytes.
type Allocator interface {
	// Allocate reserves size bytes or reports why it cannot.
	Allocate(size int) error
	// Free returns size bytes previously reserved with Allocate.
	Free(size int)
}

// HeapAllocator delegates to the Go runtime and never fails.
type HeapAllocator struct{}

// Allocate implements Allocator.
func (HeapAllocator) Allocate(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return nil
}

// Free implements Allocator.
func (HeapAllocator) Free(int) {}

// FailingAllocator refuses every request.
type FailingAllocator struct{}

// Allocate implements Allocator.
func (FailingAllocator) Allocate(size int) error {
	return fmt.Errorf("%w: request of %d bytes refused", ErrExhausted, size)
}

// Free implements Allocator.
func (FailingAllocator) Free(int) {}

// BudgetAllocator hands out storage until a fixed byte budget is spent.
// It is safe for concurrent use.
type BudgetAllocator struct {
	mu    sync.Mutex
	limit int64
	used  int64
}

// NewBudgetAllocator creates an allocator with a budget of limit bytes.
func NewBudgetAllocator(limit int64) *BudgetAllocator {
	if limit < 0 {
		limit = 0
	}
	return &BudgetAllocator{limit: limit}
}

// Allocate implements Allocator.
func (b *BudgetAllocator) Allocate(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.used+int64(size) > b.limit {
		return fmt.Errorf("%w: %d bytes requested, %d of %d available",
			ErrExhausted, size, b.limit-b.used, b.limit)
	}
	b.used += int64(size)
	return nil
}

// Free implements Allocator. Freeing more than is in use clamps to zero.
func (b *BudgetAllocator) Free(size int) {
	if size <= 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.used -= int64(size)
	if b.used < 0 {
		b.used = 0
	}
}

// Limit returns the total budget in bytes.
func (b *BudgetAllocator) Limit() int64 {
	return b.limit
}

// InUse returns the bytes currently reserved.
func (b *BudgetAllocator) InUse() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Available returns the bytes that can still be reserved.
func (b *BudgetAllocator) Available() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limit - b.used
}

// Kind returns a short name for the allocator implementation.
func Kind(a Allocator) string {
	switch a.(type) {
	case HeapAllocator, *HeapAllocator:
		return "heap"
	case *BudgetAllocator:
		return "budget"
	case FailingAllocator, *FailingAllocator:
		return "failing"
	case nil:
		return "none"
	default:
		return "custom"
	}
}

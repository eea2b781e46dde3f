package pqueue

import "errors"

var (
	// ErrEmpty is the panic value of Pop and Peek on an empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")
	// ErrFull is the panic value of Push on a heap at capacity.
	ErrFull = errors.New("pqueue: heap is at capacity")
	// ErrNotMember is the panic value of Update or Fix with a foreign item.
	ErrNotMember = errors.New("pqueue: item is not in the heap")
	// ErrBadCapacity is the panic value of New with a negative capacity.
	ErrBadCapacity = errors.New("pqueue: capacity must be non-negative")
	// ErrCorrupt is wrapped by Valid when an invariant does not hold.
	ErrCorrupt = errors.New("pqueue: heap invariant violated")
)

// Item is the capability pair a heap element needs: a strict ordering with
// tie-break (Less) and a mutable slot index owned by the heap.
//
// Implementations are typically pointers; identity (==) decides membership.
// HeapIndex is meaningful only while the item is live in a heap.
type Item[T any] interface {
	comparable
	// Less reports whether the receiver should be extracted before other.
	Less(other T) bool
	// HeapIndex returns the slot last assigned by SetHeapIndex.
	HeapIndex() int
	// SetHeapIndex is called by the heap whenever the item moves.
	SetHeapIndex(i int)
}

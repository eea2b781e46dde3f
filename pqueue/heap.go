package pqueue

import "fmt"

// Heap is a binary min-heap over at most Cap() items.
// It is not safe for concurrent use.
type Heap[T Item[T]] struct {
	items []T // len(items) == capacity; slots >= count hold the zero value
	count int
}

// New allocates a heap able to hold capacity items.
// It panics with ErrBadCapacity if capacity is negative.
func New[T Item[T]](capacity int) *Heap[T] {
	if capacity < 0 {
		panic(ErrBadCapacity)
	}

	return &Heap[T]{items: make([]T, capacity)}
}

// Len returns the number of live items.
func (h *Heap[T]) Len() int { return h.count }

// Cap returns the capacity given to New.
func (h *Heap[T]) Cap() int { return len(h.items) }

// Push inserts item at the end of the array and sifts it toward the root.
// It panics with ErrFull when the heap is at capacity.
func (h *Heap[T]) Push(item T) {
	if h.count == len(h.items) {
		panic(ErrFull)
	}
	item.SetHeapIndex(h.count)
	h.items[h.count] = item
	h.count++
	h.siftUp(item)
}

// Pop removes and returns the minimum item. The last item takes slot 0
// and is sifted down. It panics with ErrEmpty when the heap is empty.
func (h *Heap[T]) Pop() T {
	if h.count == 0 {
		panic(ErrEmpty)
	}
	first := h.items[0]
	h.count--
	last := h.items[h.count]
	var zero T
	h.items[h.count] = zero
	if h.count > 0 {
		h.items[0] = last
		last.SetHeapIndex(0)
		h.siftDown(last)
	}

	return first
}

// Peek returns the minimum item without removing it.
// It panics with ErrEmpty when the heap is empty.
func (h *Heap[T]) Peek() T {
	if h.count == 0 {
		panic(ErrEmpty)
	}

	return h.items[0]
}

// Contains reports whether item is live in h: its recorded slot is in range
// and holds that same item. Stale indices of removed or never-inserted items
// yield false.
func (h *Heap[T]) Contains(item T) bool {
	i := item.HeapIndex()
	return i >= 0 && i < h.count && h.items[i] == item
}

// Update restores order after item's key decreased (it must now be
// extracted no later than before). Only an upward sift is performed.
// It panics with ErrNotMember if item is not live in h.
func (h *Heap[T]) Update(item T) {
	if !h.Contains(item) {
		panic(ErrNotMember)
	}
	h.siftUp(item)
}

// Fix restores order after an arbitrary change to item's key.
// It panics with ErrNotMember if item is not live in h.
func (h *Heap[T]) Fix(item T) {
	if !h.Contains(item) {
		panic(ErrNotMember)
	}
	h.siftUp(item)
	h.siftDown(item)
}

// Reset empties the heap, keeping its capacity.
func (h *Heap[T]) Reset() {
	var zero T
	for i := 0; i < h.count; i++ {
		h.items[i] = zero
	}
	h.count = 0
}

// Items returns the live items in slot order. The slice is a copy.
func (h *Heap[T]) Items() []T {
	out := make([]T, h.count)
	copy(out, h.items[:h.count])

	return out
}

// Valid checks both heap invariants: no child is ordered before its parent,
// and every live item's HeapIndex matches its slot. It returns an error
// wrapping ErrCorrupt describing the first violation found.
func (h *Heap[T]) Valid() error {
	for i := 0; i < h.count; i++ {
		if got := h.items[i].HeapIndex(); got != i {
			return fmt.Errorf("%w: item in slot %d records index %d", ErrCorrupt, i, got)
		}
		if i > 0 && h.items[i].Less(h.items[(i-1)/2]) {
			return fmt.Errorf("%w: slot %d ordered before parent slot %d", ErrCorrupt, i, (i-1)/2)
		}
	}

	return nil
}

// siftUp swaps item with its parent while item is ordered before it.
func (h *Heap[T]) siftUp(item T) {
	for {
		i := item.HeapIndex()
		if i == 0 {
			return
		}
		parent := h.items[(i-1)/2]
		if !item.Less(parent) {
			return
		}
		h.swap(item, parent)
	}
}

// siftDown swaps item with its smaller child while that child is ordered before it.
func (h *Heap[T]) siftDown(item T) {
	for {
		left := item.HeapIndex()*2 + 1
		if left >= h.count {
			return
		}
		best := left
		if right := left + 1; right < h.count && h.items[right].Less(h.items[left]) {
			best = right
		}
		if !h.items[best].Less(item) {
			return
		}
		h.swap(item, h.items[best])
	}
}

// swap exchanges the slots of a and b and their recorded indices.
func (h *Heap[T]) swap(a, b T) {
	ia, ib := a.HeapIndex(), b.HeapIndex()
	h.items[ia], h.items[ib] = b, a
	a.SetHeapIndex(ib)
	b.SetHeapIndex(ia)
}

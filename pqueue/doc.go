// Package pqueue implements a fixed-capacity binary min-heap whose items
// track their own slot in the backing array.
//
// Because every item knows its index, membership tests are O(1) and an item
// whose key improved can be re-sifted in place in O(log n) without searching
// for it. This is the open set of the astar package.
//
// Ordering:
//
//	Item.Less(other) reports whether the receiver must be extracted before
//	other. The heap keeps the minimum under Less at slot 0; there is no
//	inverted comparison anywhere.
//
// Complexity:
//
//   - Push, Pop, Update, Fix: O(log n).
//   - Peek, Contains, Len:    O(1).
//   - Valid:                  O(n).
//
// Preconditions (violations panic):
//
//   - ErrEmpty:     Pop or Peek on an empty heap.
//   - ErrFull:      Push beyond the capacity given to New.
//   - ErrNotMember: Update or Fix of an item that is not live in this heap.
package pqueue

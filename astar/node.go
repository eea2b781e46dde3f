package astar

// node is the per-search state of one grid cell.
type node struct {
	x, y      int
	gCost     int // cost of the best known walk from the start
	hCost     int // octile estimate to the target
	parent    int // row-major index of the predecessor, -1 for the start
	heapIndex int // slot in the open set, owned by pqueue
}

func (n *node) fCost() int { return n.gCost + n.hCost }

// Less orders by fCost, then hCost, ascending.
func (n *node) Less(o *node) bool {
	if f, of := n.fCost(), o.fCost(); f != of {
		return f < of
	}

	return n.hCost < o.hCost
}

func (n *node) HeapIndex() int     { return n.heapIndex }
func (n *node) SetHeapIndex(i int) { n.heapIndex = i }

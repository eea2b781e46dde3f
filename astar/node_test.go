package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNodeLess pins the open-set order: fCost ascending, then hCost ascending.
func TestNodeLess(t *testing.T) {
	cases := []struct {
		name string
		a, b node
		want bool
	}{
		{"LowerF", node{gCost: 10, hCost: 20}, node{gCost: 20, hCost: 20}, true},
		{"HigherF", node{gCost: 30, hCost: 20}, node{gCost: 20, hCost: 20}, false},
		{"TieCloserToGoal", node{gCost: 40, hCost: 10}, node{gCost: 30, hCost: 20}, true},
		{"TieFartherFromGoal", node{gCost: 30, hCost: 20}, node{gCost: 40, hCost: 10}, false},
		{"Equal", node{gCost: 30, hCost: 20}, node{gCost: 30, hCost: 20}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a, tc.b
			assert.Equal(t, tc.want, a.Less(&b))
		})
	}
}

// TestRetrace verifies predecessor links are walked back and reversed, start excluded.
func TestRetrace(t *testing.T) {
	g := mustOpenGrid(t)
	r := &runner{g: g, nodes: make([]node, g.MaxSize())}
	// chain (0,0) <- (1,0) <- (2,1) <- (2,2)
	r.nodes[g.Index(1, 0)].parent = g.Index(0, 0)
	r.nodes[g.Index(2, 1)].parent = g.Index(1, 0)
	r.nodes[g.Index(2, 2)].parent = g.Index(2, 1)

	path := r.retrace(g.Index(0, 0), g.Index(2, 2))
	var got [][2]int
	for _, c := range path {
		got = append(got, c.Pos())
	}
	assert.Equal(t, [][2]int{{1, 0}, {2, 1}, {2, 2}}, got)
	assert.Empty(t, r.retrace(g.Index(1, 1), g.Index(1, 1)))
}

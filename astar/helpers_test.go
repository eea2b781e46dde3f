package astar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgrid/spatial"
)

func mustOpenGrid(t *testing.T) *spatial.Grid {
	t.Helper()
	g, err := spatial.New(spatial.WithWorldSize(3, 3), spatial.WithNodeRadius(0.5))
	require.NoError(t, err)
	return g
}

package pathfind

import (
	"testing"

	"github.com/1siamBot/geoscape/engine/savegame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func link(t *testing.T, n *savegame.Node, slot, to, kind int) {
	t.Helper()
	require.NoError(t, n.AssignLink(savegame.NodeLink{ConnectedNode: to, Type: kind}, slot))
}

// graph: 0 - 1 - 2 - 3 along the ground, plus a flying shortcut 0 -> 3.
func testGraph(t *testing.T) []*savegame.Node {
	t.Helper()
	var nodes []*savegame.Node
	for i := 0; i < 4; i++ {
		nodes = append(nodes, savegame.NewNode(i, savegame.Position{X: i * 10}, 0, 0, savegame.RankScout, 0, 0, 0))
	}
	link(t, nodes[0], 0, 1, 0)
	link(t, nodes[0], 1, 3, savegame.TypeFlying)
	link(t, nodes[0], 2, -1, 0) // exit
	link(t, nodes[1], 0, 2, 0)
	link(t, nodes[1], 1, 0, 0)
	link(t, nodes[2], 0, 3, 0)
	return nodes
}

func TestFindNodeRoute_Ground(t *testing.T) {
	route := FindNodeRoute(testGraph(t), 0, 3, false)
	assert.Equal(t, []int{0, 1, 2, 3}, route)
}

func TestFindNodeRoute_FlyingShortcut(t *testing.T) {
	nodes := testGraph(t)
	// lift node 3 so the direct link is no longer a straight line through 1 and 2
	nodes[3] = savegame.NewNode(3, savegame.Position{X: 30, Z: 1}, 0, 0, savegame.RankScout, 0, 0, 0)
	route := FindNodeRoute(nodes, 0, 3, true)
	assert.Equal(t, []int{0, 3}, route)
}

func TestFindNodeRoute_Unreachable(t *testing.T) {
	nodes := testGraph(t)
	assert.Nil(t, FindNodeRoute(nodes, 3, 0, false), "links are one-way")
	assert.Nil(t, FindNodeRoute(nodes, 0, 42, false))
}

func TestFindNodeRoute_SameNode(t *testing.T) {
	assert.Equal(t, []int{2}, FindNodeRoute(testGraph(t), 2, 2, false))
}

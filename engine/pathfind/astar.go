package pathfind

import (
	"container/heap"
	"math"

	"github.com/1siamBot/geoscape/engine/savegame"
)

// FindNodeRoute finds a route through the battlescape node graph using A*.
// It returns node ids from start to goal inclusive, or nil if the goal is
// unreachable. Links to map exits are ignored; flying-only links are only
// used when flying is set.
func FindNodeRoute(nodes []*savegame.Node, start, goal int, flying bool) []int {
	byID := make(map[int]*savegame.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID()] = n
	}
	from, ok := byID[start]
	if !ok {
		return nil
	}
	to, ok := byID[goal]
	if !ok {
		return nil
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{id: start, g: 0, f: heuristic(from, to)})

	came := make(map[int]int)
	gScore := make(map[int]float64)
	gScore[start] = 0
	closed := make(map[int]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if cur.id == goal {
			return reconstructPath(came, goal)
		}
		if closed[cur.id] {
			continue
		}
		closed[cur.id] = true

		curNode := byID[cur.id]
		for _, l := range curNode.Links() {
			if l.ConnectedNode < 0 {
				continue
			}
			if l.Type&savegame.TypeFlying != 0 && !flying {
				continue
			}
			next, ok := byID[l.ConnectedNode]
			if !ok || closed[next.ID()] {
				continue
			}
			tentG := gScore[cur.id] + distance(curNode, next)
			if old, ok := gScore[next.ID()]; ok && tentG >= old {
				continue
			}
			gScore[next.ID()] = tentG
			came[next.ID()] = cur.id
			heap.Push(open, &node{id: next.ID(), g: tentG, f: tentG + heuristic(next, to)})
		}
	}
	return nil // no path
}

func distance(a, b *savegame.Node) float64 {
	dx := float64(a.X() - b.X())
	dy := float64(a.Y() - b.Y())
	dz := float64(a.Z() - b.Z())
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func heuristic(a, b *savegame.Node) float64 {
	return distance(a, b)
}

func reconstructPath(came map[int]int, goal int) []int {
	path := []int{goal}
	cur := goal
	for {
		prev, ok := came[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// --- Priority queue ---

type node struct {
	id   int
	g, f float64
}

type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

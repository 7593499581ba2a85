package savegame

import (
	"errors"
	"fmt"
)

// NodeRank is the rank of unit that may spawn on a node
type NodeRank int

const (
	RankScout NodeRank = iota
	RankXCom
	RankSoldier
	RankNavigator
	RankLeader
	RankEngineer
	RankMisc1
	RankMedic
	RankMisc2
)

// Node type flags
const (
	TypeFlying    = 0x01
	TypeSmall     = 0x02
	TypeDangerous = 0x04
)

// NodeLinkSlots is the number of links a node can hold.
const NodeLinkSlots = 5

var ErrLinkIndex = errors.New("node link index out of range")

// Position is a battlescape voxel-layer coordinate
type Position struct {
	X, Y, Z int
}

// NodeLink connects a node to another one. ConnectedNode is negative for
// map exits; Type carries the node type flags the link is usable by.
type NodeLink struct {
	ConnectedNode int
	Distance      int
	Type          int
}

// Node is a waypoint of the battlescape route graph used by AI movement
type Node struct {
	id       int
	pos      Position
	segment  int
	kind     int
	rank     NodeRank
	flags    int
	reserved int
	priority int
	links    [NodeLinkSlots]*NodeLink
}

// NewNode creates a node with no links
func NewNode(id int, pos Position, segment, kind int, rank NodeRank, flags, reserved, priority int) *Node {
	return &Node{
		id:       id,
		pos:      pos,
		segment:  segment,
		kind:     kind,
		rank:     rank,
		flags:    flags,
		reserved: reserved,
		priority: priority,
	}
}

// AssignLink puts a link in slot index (0-4)
func (n *Node) AssignLink(link NodeLink, index int) error {
	if index < 0 || index >= NodeLinkSlots {
		return fmt.Errorf("assign link %d on node %d: %w", index, n.id, ErrLinkIndex)
	}
	l := link
	n.links[index] = &l
	return nil
}

// Link returns the link in a slot, or nil
func (n *Node) Link(index int) *NodeLink {
	if index < 0 || index >= NodeLinkSlots {
		return nil
	}
	return n.links[index]
}

// Links returns the assigned links in slot order
func (n *Node) Links() []NodeLink {
	var out []NodeLink
	for _, l := range n.links {
		if l != nil {
			out = append(out, *l)
		}
	}
	return out
}

func (n *Node) ID() int            { return n.id }
func (n *Node) Position() Position { return n.pos }
func (n *Node) X() int             { return n.pos.X }
func (n *Node) Y() int             { return n.pos.Y }
func (n *Node) Z() int             { return n.pos.Z }
func (n *Node) Segment() int       { return n.segment }
func (n *Node) Type() int          { return n.kind }
func (n *Node) Rank() NodeRank     { return n.rank }
func (n *Node) Flags() int         { return n.flags }
func (n *Node) Reserved() int      { return n.reserved }
func (n *Node) Priority() int      { return n.priority }

// Dangerous reports whether AI should avoid stopping here
func (n *Node) Dangerous() bool { return n.kind&TypeDangerous != 0 }

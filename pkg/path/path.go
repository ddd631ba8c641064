// Package path models the scripted movement of a brush or thing as an
// ordered sequence of waypoints.
package path

import (
	"fmt"

	"github.com/cloudcalvin/HillVacuum/pkg/geom"
)

// Movement holds the motion parameters of a single waypoint.
type Movement struct {
	// MaxSpeed is the travel speed toward the next node, in units per second.
	MaxSpeed float32
	// MinSpeed is the floor the speed eases down to during deceleration.
	MinSpeed float32
	// AccelPercent is the fraction of the leg spent accelerating, in [0, 1].
	AccelPercent float32
	// DecelPercent is the fraction of the leg spent decelerating, in [0, 1].
	DecelPercent float32
	// StandbyTime is how long the entity idles at the node, in seconds.
	StandbyTime float32
}

// DefaultMovement returns the parameters a freshly inserted node gets.
func DefaultMovement() Movement {
	return Movement{MaxSpeed: 60}
}

// Node is one waypoint of a path.
type Node struct {
	Pos      geom.Vec2
	Movement Movement
}

// Path is an ordered waypoint sequence. It is owned by exactly one brush or
// thing; looping or reversal is expressed through the movement parameters,
// never inferred from waypoint positions.
type Path struct {
	nodes []Node
}

// New creates a path from the given nodes.
func New(nodes ...Node) *Path {
	p := &Path{nodes: make([]Node, len(nodes))}
	copy(p.nodes, nodes)
	return p
}

// Len returns the number of nodes.
func (p *Path) Len() int {
	return len(p.nodes)
}

// Node returns the node at index i.
func (p *Path) Node(i int) Node {
	return p.nodes[i]
}

// Nodes returns a copy of the node sequence in order.
func (p *Path) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Insert adds a node before index i.
func (p *Path) Insert(i int, n Node) error {
	if i < 0 || i > len(p.nodes) {
		return fmt.Errorf("path: insert index %d out of range", i)
	}
	p.nodes = append(p.nodes, Node{})
	copy(p.nodes[i+1:], p.nodes[i:])
	p.nodes[i] = n
	return nil
}

// Append adds a node at the end.
func (p *Path) Append(n Node) {
	p.nodes = append(p.nodes, n)
}

// Remove deletes the node at index i.
func (p *Path) Remove(i int) error {
	if i < 0 || i >= len(p.nodes) {
		return fmt.Errorf("path: remove index %d out of range", i)
	}
	p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
	return nil
}

// MoveNode repositions the node at index i.
func (p *Path) MoveNode(i int, pos geom.Vec2) error {
	if i < 0 || i >= len(p.nodes) {
		return fmt.Errorf("path: move index %d out of range", i)
	}
	p.nodes[i].Pos = pos
	return nil
}

// SetMovement replaces the motion parameters of the node at index i.
func (p *Path) SetMovement(i int, m Movement) error {
	if i < 0 || i >= len(p.nodes) {
		return fmt.Errorf("path: movement index %d out of range", i)
	}
	p.nodes[i].Movement = m
	return nil
}

// Translate moves every node by delta.
func (p *Path) Translate(delta geom.Vec2) {
	for i := range p.nodes {
		p.nodes[i].Pos = p.nodes[i].Pos.Add(delta)
	}
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	return New(p.nodes...)
}

// Equal compares two paths node for node.
func (p *Path) Equal(other *Path) bool {
	if len(p.nodes) != len(other.nodes) {
		return false
	}
	for i, n := range p.nodes {
		if n != other.nodes[i] {
			return false
		}
	}
	return true
}

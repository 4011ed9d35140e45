// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements rooted phylogenetic trees
// stored as an arena of nodes,
// and the labeling of their internal nodes
// with stable MRCA identifiers.
//
// Nodes are identified by their index in the arena.
// The root is always the first node added to the tree.
package tree

import (
	"fmt"
	"io"

	"github.com/js-arias/timetree"
	"golang.org/x/exp/slices"
)

// NoLength is the length of a branch
// that was not defined in the input tree.
const NoLength = -1

type node struct {
	parent   int
	children []int
	name     string
	length   float64
}

// A Tree is a rooted tree.
type Tree struct {
	nodes []*node
}

// New creates a new empty tree.
func New() *Tree {
	return &Tree{}
}

// Add adds a new node as a child of parent,
// and returns the ID of the new node.
// If parent is -1,
// the node will be the root of the tree.
func (t *Tree) Add(parent int, name string) (int, error) {
	if parent < 0 {
		if len(t.nodes) > 0 {
			return 0, fmt.Errorf("tree: root already defined")
		}
		t.nodes = append(t.nodes, &node{
			parent: -1,
			name:   name,
			length: NoLength,
		})
		return 0, nil
	}
	if parent >= len(t.nodes) {
		return 0, fmt.Errorf("tree: parent node %d not found", parent)
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, &node{
		parent: parent,
		name:   name,
		length: NoLength,
	})
	p := t.nodes[parent]
	p.children = append(p.children, id)
	return id, nil
}

// Children returns the IDs of the children
// of a node.
func (t *Tree) Children(id int) []int {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

// IsRoot returns true if the node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	n := t.node(id)
	if n == nil {
		return false
	}
	return n.parent < 0
}

// IsTerm returns true if the node is a terminal
// (i.e., a leaf).
func (t *Tree) IsTerm(id int) bool {
	n := t.node(id)
	if n == nil {
		return false
	}
	return len(n.children) == 0
}

// Len returns the branch length of a node.
// If the length is undefined,
// it returns NoLength.
func (t *Tree) Len(id int) float64 {
	n := t.node(id)
	if n == nil {
		return NoLength
	}
	return n.length
}

// SetLen sets the branch length of a node.
func (t *Tree) SetLen(id int, length float64) {
	n := t.node(id)
	if n == nil {
		return
	}
	n.length = length
}

// Name returns the name of a node.
func (t *Tree) Name(id int) string {
	n := t.node(id)
	if n == nil {
		return ""
	}
	return n.name
}

// SetName sets the name of a node.
func (t *Tree) SetName(id int, name string) {
	n := t.node(id)
	if n == nil {
		return
	}
	n.name = name
}

// Nodes returns the number of nodes in the tree.
func (t *Tree) Nodes() int {
	return len(t.nodes)
}

// Parent returns the ID of the parent of a node.
// The root, or an invalid node, returns -1.
func (t *Tree) Parent(id int) int {
	n := t.node(id)
	if n == nil {
		return -1
	}
	return n.parent
}

// Root returns the ID of the root,
// or -1 if the tree is empty.
func (t *Tree) Root() int {
	if len(t.nodes) == 0 {
		return -1
	}
	return 0
}

// Terms returns the sorted names
// of the terminals descendant from a node.
// Unnamed terminals are ignored.
func (t *Tree) Terms(id int) []string {
	if t.node(id) == nil {
		return nil
	}

	var terms []string
	stack := []int{id}
	for len(stack) > 0 {
		n := t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if len(n.children) == 0 {
			if n.name != "" {
				terms = append(terms, n.name)
			}
			continue
		}
		stack = append(stack, n.children...)
	}
	slices.Sort(terms)
	return terms
}

// Traverse returns the IDs of all nodes of the tree
// in level order:
// the root first,
// then its children,
// then its grandchildren,
// and so on,
// keeping the order of the children of each node.
//
// Any numbering of nodes must use this order.
func (t *Tree) Traverse() []int {
	if len(t.nodes) == 0 {
		return nil
	}

	order := make([]int, 0, len(t.nodes))
	order = append(order, t.Root())
	for i := 0; i < len(order); i++ {
		order = append(order, t.nodes[order[i]].children...)
	}
	return order
}

func (t *Tree) node(id int) *node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// FromTimeTree returns a tree
// from a time calibrated tree.
// Terminal names are the taxon names of the terminals,
// and branch lengths are given in million years.
func FromTimeTree(tt *timetree.Tree) *Tree {
	t := New()
	var add func(parent, id int)
	add = func(parent, id int) {
		name := ""
		if tt.IsTerm(id) {
			name = tt.Taxon(id)
		}
		nID, _ := t.Add(parent, name)
		if !tt.IsRoot(id) {
			t.SetLen(nID, float64(tt.Age(tt.Parent(id))-tt.Age(id))/millionYears)
		}
		for _, c := range tt.Children(id) {
			add(nID, c)
		}
	}
	add(-1, tt.Root())
	return t
}

const millionYears = 1_000_000

// ReadTimeTree reads a tree
// from a tab-delimited collection of time calibrated trees.
// If name is empty,
// the collection must have a single tree.
func ReadTimeTree(r io.Reader, name string) (*Tree, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, err
	}

	if name == "" {
		ls := c.Names()
		if len(ls) != 1 {
			return nil, fmt.Errorf("expecting a single tree, found %d trees", len(ls))
		}
		name = ls[0]
	}
	tt := c.Tree(name)
	if tt == nil {
		return nil, fmt.Errorf("tree %q not found", name)
	}
	return FromTimeTree(tt), nil
}

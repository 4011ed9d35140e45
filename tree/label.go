// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// RootID is the identifier of the root node.
const RootID = "root"

// ErrNoInternal is returned when a tree
// does not have any internal node
// (i.e., it is a single terminal).
var ErrNoInternal = errors.New("tree without internal nodes")

// NodeID returns the identifier
// of the non-root internal node
// with the given sequence number.
// Numbers start at 1.
func NodeID(n int) string {
	return fmt.Sprintf("mrca_%02d", n)
}

// Internal returns the IDs of the internal nodes
// (including the root if it is not a terminal)
// in traversal order.
func (t *Tree) Internal() []int {
	var in []int
	for _, id := range t.Traverse() {
		if t.IsTerm(id) {
			continue
		}
		in = append(in, id)
	}
	return in
}

// Labels returns the identifiers of the internal nodes,
// in the same order as Internal.
// The root is labeled as "root",
// and the other internal nodes as "mrca_NN"
// in which NN is the sequence number of the node.
func (t *Tree) Labels() []string {
	in := t.Internal()
	labels := make([]string, 0, len(in))
	n := 0
	for _, id := range in {
		if t.IsRoot(id) {
			labels = append(labels, RootID)
			continue
		}
		n++
		labels = append(labels, NodeID(n))
	}
	return labels
}

// Label sets the name of each internal node
// to its identifier.
// Terminals are never renamed.
func (t *Tree) Label() {
	in := t.Internal()
	for i, lb := range t.Labels() {
		t.SetName(in[i], lb)
	}
}

// AnnotatedPath returns the file name
// used for the annotated version of a tree file.
// The name is the base of the input file
// with the "_nodenames" suffix
// and the same extension,
// or ".nwck" if the file has no extension.
func AnnotatedPath(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if ext == "" {
		ext = ".nwck"
	}
	return base + "_nodenames" + ext
}

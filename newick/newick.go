// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of trees in Newick (parenthetical) format.
//
// Only the first tree of the input is read.
// Node names and branch lengths are preserved;
// other annotations are ignored.
package newick

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	gonewick "github.com/evolbioinfo/gotree/io/newick"
	gotree "github.com/evolbioinfo/gotree/tree"
	"github.com/js-arias/beam/tree"
)

// Read reads a tree in Newick format.
func Read(r io.Reader) (*tree.Tree, error) {
	gt, err := gonewick.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("newick: %v", err)
	}
	root := gt.Root()
	if root == nil {
		return nil, fmt.Errorf("newick: empty tree")
	}

	t := tree.New()
	if err := copyNode(t, -1, root, nil, nil); err != nil {
		return nil, err
	}
	return t, nil
}

// copyNode adds a node from the parsed tree,
// and its descendants.
// Prev is the node already added
// (i.e., the parent),
// and e the edge that connects both nodes.
func copyNode(t *tree.Tree, parent int, n, prev *gotree.Node, e *gotree.Edge) error {
	id, err := t.Add(parent, unquote(n.Name()))
	if err != nil {
		return fmt.Errorf("newick: %v", err)
	}
	if e != nil && e.Length() >= 0 {
		t.SetLen(id, e.Length())
	}

	edges := n.Edges()
	for i, c := range n.Neigh() {
		if c == prev {
			continue
		}
		if err := copyNode(t, id, c, n, edges[i]); err != nil {
			return err
		}
	}
	return nil
}

// Write writes a tree in Newick format.
func Write(w io.Writer, t *tree.Tree) error {
	bw := bufio.NewWriter(w)
	if root := t.Root(); root >= 0 {
		writeNode(bw, t, root)
	}
	fmt.Fprintf(bw, ";\n")
	return bw.Flush()
}

func writeNode(w *bufio.Writer, t *tree.Tree, id int) {
	if children := t.Children(id); len(children) > 0 {
		w.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				w.WriteByte(',')
			}
			writeNode(w, t, c)
		}
		w.WriteByte(')')
	}
	w.WriteString(label(t.Name(id)))
	if l := t.Len(id); l >= 0 {
		w.WriteByte(':')
		w.WriteString(strconv.FormatFloat(l, 'g', -1, 64))
	}
}

// Characters that require a label to be quoted.
const unquoteBanned = " \t\n\r()[]':;,"

// unquote removes the quotes of a quoted label.
func unquote(name string) string {
	if len(name) < 2 || name[0] != '\'' || name[len(name)-1] != '\'' {
		return name
	}
	return strings.ReplaceAll(name[1:len(name)-1], "''", "'")
}

func label(name string) string {
	if !strings.ContainsAny(name, unquoteBanned) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

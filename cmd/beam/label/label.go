// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package label implements a command to write a tree
// with the identifiers of its internal nodes.
package label

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/beam/newick"
	"github.com/js-arias/beam/tree"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `label [--tsv <tree-name>] [-o|--output <tree-file>]
	<tree-file>`,
	Short: "write a tree with internal node identifiers",
	Long: `
Command label reads a phylogenetic tree and writes it in Newick format, using
the identifiers of the internal nodes as node names. The identifiers are the
same used by the command "beam prior".

The argument of the command is the name of the file that contains the tree.
By default, the tree is expected in Newick format. If the flag --tsv is
defined, the tree will be read from a tab-delimited file of time calibrated
trees, using the tree with the indicated name. If the name is "-", the file
must have a single tree.

By default, the output file will be named as the input file with the
"_nodenames" suffix. Use the flag -o, or --output, to define a different file
name. If the output is "-", the tree will be printed in the standard output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tsvTree string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tsvTree, "tsv", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}
	return labelTree(c.Stdout(), args[0])
}

func labelTree(w io.Writer, tf string) error {
	t, err := readTree(tf)
	if err != nil {
		return err
	}
	if len(t.Internal()) == 0 {
		return fmt.Errorf("on file %q: %w", tf, tree.ErrNoInternal)
	}
	t.Label()

	if output == "-" {
		return newick.Write(w, t)
	}
	out := output
	if out == "" {
		out = tree.AnnotatedPath(tf)
	}
	return writeTree(out, t)
}

func readTree(name string) (*tree.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *tree.Tree
	if tsvTree != "" {
		tn := tsvTree
		if tn == "-" {
			tn = ""
		}
		t, err = tree.ReadTimeTree(f, tn)
	} else {
		t, err = newick.Read(f)
	}
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

func writeTree(name string, t *tree.Tree) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := newick.Write(f, t); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clades implements a command to print
// the internal nodes of a tree
// and their terminals.
package clades

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/beam/newick"
	"github.com/js-arias/beam/tree"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "clades [--tsv <tree-name>] <tree-file>",
	Short: "print the internal nodes of a tree",
	Long: `
Command clades reads a phylogenetic tree and prints the internal nodes of the
tree, using the identifiers of the command "beam prior", in the same order used
to build the priors.

The argument of the command is the name of the file that contains the tree.
By default, the tree is expected in Newick format. If the flag --tsv is
defined, the tree will be read from a tab-delimited file of time calibrated
trees, using the tree with the indicated name. If the name is "-", the file
must have a single tree.

The output is a tab-delimited table with the following columns:

	- node    the identifier of the node
	- parent  the identifier of the parent node ("-" for the root)
	- size    the number of terminals of the node
	- taxa    the terminals of the node, sorted and separated by commas
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tsvTree string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tsvTree, "tsv", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	t, err := readTree(args[0])
	if err != nil {
		return err
	}
	if err := writeClades(c.Stdout(), t); err != nil {
		return fmt.Errorf("while writing clades: %v", err)
	}
	return nil
}

var header = []string{
	"node",
	"parent",
	"size",
	"taxa",
}

func writeClades(w io.Writer, t *tree.Tree) error {
	in := t.Internal()
	labels := t.Labels()
	ids := make(map[int]string, len(in))
	for i, id := range in {
		ids[id] = labels[i]
	}

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write(header); err != nil {
		return err
	}
	for _, id := range in {
		parent := "-"
		if p := t.Parent(id); p >= 0 {
			parent = ids[p]
		}
		terms := t.Terms(id)
		row := []string{
			ids[id],
			parent,
			strconv.Itoa(len(terms)),
			strings.Join(terms, ","),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
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

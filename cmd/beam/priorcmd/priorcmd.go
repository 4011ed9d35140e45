// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package priorcmd implements a command to build
// BEAST MRCA priors from a phylogenetic tree.
package priorcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/beam/beastxml"
	"github.com/js-arias/beam/newick"
	"github.com/js-arias/beam/prior"
	"github.com/js-arias/beam/tree"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `prior [--spec <algorithm>] [--tree <tree-id>]
	[--xml <beast-file>] [--tsv <tree-name>]
	[-o|--output <tree-file>] <tree-file>`,
	Short: "build MRCA priors from a tree",
	Long: `
Command prior reads a phylogenetic tree and builds a BEAST MRCA prior for each
internal node of the tree. Each prior declares the terminals of the node as a
monophyletic taxon set.

The argument of the command is the name of the file that contains the tree.
By default, the tree is expected in Newick (parenthetical) format. If the flag
--tsv is defined, the tree will be read from a tab-delimited file of time
calibrated trees (as used by PhyGeo and TimeTree), using the tree with the
indicated name. If the name is "-", the file must have a single tree.

Internal nodes are identified in level order, starting from the root. The root
is identified as "root", and the other internal nodes as "mrca_NN", in which
NN is the number of the node. A copy of the tree with the node identifiers as
internal node names is written with the name of the input file with the
"_nodenames" suffix (for example, "tree.nwk" is written as
"tree_nodenames.nwk"). Use the flag -o, or --output, to define a different
file name.

By default, the distribution of the prior is
"beast.math.distributions.MRCAPrior". Use the flag --spec to define a
different algorithm. By default, the priors reference the tree
"Tree.t:Species", the species tree in StarBEAST3. Use the flag --tree to
define a different tree ID. These values might change with the BEAST version
and model.

If the flag --xml is defined with a BEAST XML file, the priors will be added
to the distribution with the ID "prior", and a log reference to each prior
will be added to the logger with the ID "tracelog". The file will be
overwritten. If any of these elements is not found, the file is not modified.

If no XML file is given, the priors will be written in the file
"taxonset.xml", with commented tags that indicate where the priors should be
pasted in a BEAST XML file. If the file already exists, it will be
overwritten.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var specFlag string
var treeRef string
var xmlFile string
var tsvTree string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&specFlag, "spec", prior.DefaultSpec, "")
	c.Flags().StringVar(&treeRef, "tree", prior.DefaultTree, "")
	c.Flags().StringVar(&xmlFile, "xml", "", "")
	c.Flags().StringVar(&tsvTree, "tsv", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}
	return buildPriors(c.Stdout(), args[0])
}

// sidecar is the file used
// when no XML file is given.
var sidecar = beastxml.SidecarFile

func buildPriors(w io.Writer, tf string) error {
	t, err := readTree(tf)
	if err != nil {
		return err
	}
	if len(t.Internal()) == 0 {
		return fmt.Errorf("on file %q: %w", tf, tree.ErrNoInternal)
	}

	blocks, logs := prior.Build(t, specFlag, treeRef)

	// the document is merged in memory
	// before writing any file
	var doc *beastxml.Document
	if xmlFile != "" {
		doc, err = beastxml.Read(xmlFile)
		if err != nil {
			return err
		}
		if err := prior.Merge(doc, blocks, logs); err != nil {
			return fmt.Errorf("on file %q: %w", doc.Name(), err)
		}
	}

	t.Label()
	out := output
	if out == "" {
		out = tree.AnnotatedPath(tf)
	}
	if err := writeTree(out, t); err != nil {
		return err
	}

	if doc == nil {
		if err := beastxml.WriteSidecarFile(sidecar, blocks, logs); err != nil {
			return err
		}
		fmt.Fprintf(w, "created %s\n", sidecar)
		return nil
	}

	if err := doc.Write(); err != nil {
		return err
	}
	fmt.Fprintf(w, "updated XML written to: %s\n", doc.Name())
	return nil
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

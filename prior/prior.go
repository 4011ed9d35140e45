// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prior builds BEAST MRCA prior blocks
// from the internal nodes of a tree,
// and merges them into a BEAST configuration document.
//
// Each internal node of the tree
// produces a distribution block,
// with a taxon set that contains all the terminals
// descendant from the node.
// The taxon set is declared monophyletic.
package prior

import (
	"github.com/js-arias/beam/tree"
)

// Default values for the distribution blocks.
// They are the values used for the species tree
// in StarBEAST3,
// and might change with the BEAST version and model.
const (
	// DefaultSpec is the default algorithm specifier
	// of the distribution.
	DefaultSpec = "beast.math.distributions.MRCAPrior"

	// DefaultTree is the default ID of the tree object
	// referenced by the distributions.
	DefaultTree = "Tree.t:Species"
)

// TaxonSetSpec is the algorithm specifier
// of a taxon set.
const TaxonSetSpec = "TaxonSet"

// A Distribution is an MRCA prior block.
type Distribution struct {
	// ID of the distribution,
	// in the form "<node>.prior".
	ID string

	// Algorithm specifier.
	Spec string

	Monophyletic bool

	// ID of the referenced tree object
	// (without the "@" prefix).
	Tree string

	Taxa TaxonSet
}

// A TaxonSet is the set of terminals
// of an internal node.
type TaxonSet struct {
	// ID of the taxon set,
	// i.e., the node identifier.
	ID string

	// Algorithm specifier.
	Spec string

	// Sorted terminal names.
	Taxa []string
}

// LogID returns the identifier of the distribution
// of a node.
func LogID(node string) string {
	return node + ".prior"
}

// Build returns the distribution blocks
// of each internal node of a tree,
// and the identifiers of the blocks
// to be registered in the trace logger.
// Both are given in the traversal order of the tree.
//
// The tree does not need to be labeled,
// as the identifiers are derived from the tree topology.
func Build(t *tree.Tree, spec, treeRef string) ([]Distribution, []string) {
	in := t.Internal()
	labels := t.Labels()

	blocks := make([]Distribution, 0, len(in))
	logs := make([]string, 0, len(in))
	for i, id := range in {
		lb := labels[i]
		d := Distribution{
			ID:           LogID(lb),
			Spec:         spec,
			Monophyletic: true,
			Tree:         treeRef,
			Taxa: TaxonSet{
				ID:   lb,
				Spec: TaxonSetSpec,
				Taxa: t.Terms(id),
			},
		}
		blocks = append(blocks, d)
		logs = append(logs, d.ID)
	}
	return blocks, logs
}

// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(mrcaPriorsGuide)
	app.Add(treeFilesGuide)
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
By default, Beam reads trees in Newick (parenthetical) format. Only the first
tree of the file is read. Terminal names are used as taxon IDs in the BEAST
XML file, so they must be the same names used for the taxa in BEAST. Branch
lengths are kept, but they are not used to build the priors.

Here is an example file:

	((Homo_sapiens:6,Pan_troglodytes:6):2,Gorilla_gorilla:8);

Trees can also be read from tab-delimited files of time calibrated trees, as
used by PhyGeo and TimeTree, using the flag --tsv with the name of the tree.
Such files have the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

Here is an example file:

	# time calibrated phylogenetic tree
	tree	node	parent	age	taxon
	dinosaurs	0	-1	235000000
	dinosaurs	1	0	230000000	Eoraptor lunensis
	dinosaurs	2	0	170000000
	dinosaurs	3	2	145000000	Ceratosaurus nasicornis
	dinosaurs	4	2	71000000	Carnotaurus sastrei
	`,
}

var mrcaPriorsGuide = &command.Command{
	Usage: "mrca-priors",
	Short: "about MRCA priors",
	Long: `
An MRCA prior in BEAST is a distribution defined over the most recent common
ancestor of a set of taxa. Beam uses it to constrain the monophyly of each
clade of a reference tree.

Each internal node of the tree is identified in level order: first the root,
then its descendants, then the descendants of its descendants, and so on. The
root is identified as "root", and the other internal nodes as "mrca_01",
"mrca_02", and so on. The identifiers are stable: the same tree always
produces the same identifiers. Use "beam label" to write a tree with the
identifiers as node names, or "beam clades" to print the terminals of each
node.

For each internal node, Beam builds a block like this one:

	<distribution id="mrca_01.prior" spec="beast.math.distributions.MRCAPrior" monophyletic="true" tree="@Tree.t:Species">
	    <taxonset id="mrca_01" spec="TaxonSet">
	        <taxon idref="Homo_sapiens"/>
	        <taxon idref="Pan_troglodytes"/>
	    </taxonset>
	</distribution>

The blocks must be placed inside the prior distribution of the BEAST XML file
(the distribution with the ID "prior"). To log the priors, a log reference
for each block must be placed inside the trace logger (the logger with the ID
"tracelog"):

	<log idref="mrca_01.prior"/>

The command "beam prior" can add both the blocks and the log references into
a BEAST XML file.
	`,
}

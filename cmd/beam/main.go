// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Beam is a tool to build BEAST MRCA priors
// from a phylogenetic tree.
package main

import (
	"github.com/js-arias/beam/cmd/beam/clades"
	"github.com/js-arias/beam/cmd/beam/label"
	"github.com/js-arias/beam/cmd/beam/priorcmd"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "beam <command> [<argument>...]",
	Short: "a tool to build BEAST MRCA priors from a phylogenetic tree",
}

func init() {
	app.Add(clades.Command)
	app.Add(label.Command)
	app.Add(priorcmd.Command)
}

func main() {
	app.Main()
}

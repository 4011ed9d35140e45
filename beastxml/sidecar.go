// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package beastxml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/js-arias/beam/prior"
)

// SidecarFile is the name of the file
// used for stand-alone prior blocks.
const SidecarFile = "taxonset.xml"

const indent = "    "

const instructions = "<!-- THE UNCOMMENTED BLOCK SHOULD BE BETWEEN THE COMMENTED BLOCKS IN YOUR XML FILE -->"

// Fragment returns the XML text of a distribution block.
func Fragment(d prior.Distribution) (string, error) {
	doc := etree.NewDocument()
	d.AppendTo(element{&doc.Element})
	doc.Indent(len(indent))
	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\n"), nil
}

func logFragment(id string) (string, error) {
	doc := etree.NewDocument()
	element{&doc.Element}.AddChild("log", prior.Attr{Key: "idref", Value: id})
	return doc.WriteToString()
}

// WriteSidecar writes the distribution blocks
// and the log references,
// surrounded by commented tags
// that indicate where each block
// must be pasted in a BEAST XML file.
func WriteSidecar(w io.Writer, blocks []prior.Distribution, logs []string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", instructions)
	fmt.Fprintf(bw, "<!--distribution id=%q spec=\"util.CompoundDistribution\" -->\n", prior.PriorID)
	for _, b := range blocks {
		s, err := Fragment(b)
		if err != nil {
			return fmt.Errorf("block %q: %v", b.ID, err)
		}
		for _, ln := range strings.Split(s, "\n") {
			fmt.Fprintf(bw, "%s%s\n", indent, ln)
		}
	}
	fmt.Fprintf(bw, "<!--/distribution>\n")
	fmt.Fprintf(bw, "%s<distribution id=\"vectorPrior\" spec=\"util.CompoundDistribution\">\n", indent)
	fmt.Fprintf(bw, "%s%s...\n", indent, indent)
	fmt.Fprintf(bw, "%s</distribution -->\n", indent)
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "%s\n", instructions)
	fmt.Fprintf(bw, "<!--logger id=%q spec=\"Logger\" fileName=\"beast.log\" logEvery=\"10000\" model=\"@posterior\" sort=\"smart\" -->\n", prior.LoggerID)
	for _, id := range logs {
		s, err := logFragment(id)
		if err != nil {
			return fmt.Errorf("log %q: %v", id, err)
		}
		fmt.Fprintf(bw, "%s%s\n", indent, s)
	}
	fmt.Fprintf(bw, "<!--/logger-->\n")

	return bw.Flush()
}

// WriteSidecarFile writes the stand-alone prior blocks
// into a file.
// If the file exists,
// it will be overwritten.
func WriteSidecarFile(name string, blocks []prior.Distribution, logs []string) (err error) {
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

	if err := WriteSidecar(f, blocks, logs); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

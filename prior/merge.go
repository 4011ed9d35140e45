// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package prior

import (
	"errors"
	"strconv"
)

// Identifiers of the elements
// that receive the new blocks.
const (
	PriorID  = "prior"
	LoggerID = "tracelog"
)

// Errors returned by Merge.
var (
	ErrNoPrior  = errors.New(`<distribution id="prior"> not found`)
	ErrNoLogger = errors.New(`<logger id="tracelog"> not found`)
)

// An Attr is an attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// An Element is an element of a structured document
// that accepts new children.
type Element interface {
	// AddChild appends a new child element
	// and returns it.
	AddChild(tag string, attr ...Attr) Element
}

// A Document is a structured document
// in which elements can be searched
// by its tag and ID.
type Document interface {
	// Find returns the first element
	// with the given tag
	// and the given value of the "id" attribute.
	// It returns nil if there is no such element.
	Find(tag, id string) Element
}

// Merge adds the distribution blocks
// as children of the distribution with ID "prior",
// and a log reference for each log ID
// as children of the logger with ID "tracelog".
//
// If any of the elements is not found,
// the document is not modified.
func Merge(doc Document, blocks []Distribution, logs []string) error {
	pr := doc.Find("distribution", PriorID)
	if pr == nil {
		return ErrNoPrior
	}
	lg := doc.Find("logger", LoggerID)
	if lg == nil {
		return ErrNoLogger
	}

	for _, b := range blocks {
		b.AppendTo(pr)
	}
	for _, id := range logs {
		lg.AddChild("log", Attr{"idref", id})
	}
	return nil
}

// AppendTo adds the distribution
// as a child of the given element.
func (d Distribution) AppendTo(parent Element) {
	e := parent.AddChild("distribution",
		Attr{"id", d.ID},
		Attr{"spec", d.Spec},
		Attr{"monophyletic", strconv.FormatBool(d.Monophyletic)},
		Attr{"tree", "@" + d.Tree},
	)
	ts := e.AddChild("taxonset",
		Attr{"id", d.Taxa.ID},
		Attr{"spec", d.Taxa.Spec},
	)
	for _, tx := range d.Taxa.Taxa {
		ts.AddChild("taxon", Attr{"idref", tx})
	}
}

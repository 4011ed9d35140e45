// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package beastxml implements reading and writing
// of BEAST XML configuration files,
// and of stand-alone files with MRCA prior blocks
// to be pasted into a BEAST XML file.
package beastxml

import (
	"bufio"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/js-arias/beam/prior"
)

// declaration is the XML declaration
// added to documents without one.
const declaration = `version="1.0" encoding="UTF-8" standalone="no"`

// A Document is a BEAST XML document
// read from a file.
type Document struct {
	name string
	doc  *etree.Document
}

// Read reads a BEAST XML document from a file.
func Read(name string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(name); err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("while reading file %q: empty document", name)
	}
	return &Document{
		name: name,
		doc:  doc,
	}, nil
}

// Name returns the file name of the document.
func (d *Document) Name() string {
	return d.name
}

// Find returns the first element with the given tag
// and ID.
// It returns nil if no element is found.
func (d *Document) Find(tag, id string) prior.Element {
	for _, e := range d.doc.FindElements("//" + tag) {
		if e.SelectAttrValue("id", "") == id {
			return element{e}
		}
	}
	return nil
}

// Write writes the document into its original file,
// using UTF-8 encoding.
// If the document does not have an XML declaration,
// one is added.
func (d *Document) Write() (err error) {
	d.addDeclaration()

	f, err := os.Create(d.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := d.doc.WriteTo(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", d.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", d.name, err)
	}
	return nil
}

func (d *Document) addDeclaration() {
	for _, tok := range d.doc.Child {
		if p, ok := tok.(*etree.ProcInst); ok && p.Target == "xml" {
			return
		}
	}

	d.doc.InsertChildAt(0, etree.NewProcInst("xml", declaration))
	d.doc.InsertChildAt(1, etree.NewCharData("\n"))
}

// element wraps an etree element
// so it can receive prior blocks.
type element struct {
	e *etree.Element
}

func (e element) AddChild(tag string, attr ...prior.Attr) prior.Element {
	c := e.e.CreateElement(tag)
	for _, a := range attr {
		c.CreateAttr(a.Key, a.Value)
	}
	return element{c}
}

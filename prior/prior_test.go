// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package prior_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/beam/prior"
	"github.com/js-arias/beam/tree"
)

// simpleTree returns the tree ((A,B)X,(C,D)Y);
func simpleTree(t testing.TB) *tree.Tree {
	t.Helper()

	tr := tree.New()
	nodes := []struct {
		parent int
		name   string
	}{
		{-1, ""},
		{0, "X"},
		{0, "Y"},
		{1, "B"},
		{1, "A"},
		{2, "D"},
		{2, "C"},
	}
	for _, n := range nodes {
		if _, err := tr.Add(n.parent, n.name); err != nil {
			t.Fatalf("unable to build tree: %v", err)
		}
	}
	return tr
}

func TestBuild(t *testing.T) {
	tr := simpleTree(t)
	blocks, logs := prior.Build(tr, prior.DefaultSpec, prior.DefaultTree)

	want := []prior.Distribution{
		{
			ID:           "root.prior",
			Spec:         prior.DefaultSpec,
			Monophyletic: true,
			Tree:         prior.DefaultTree,
			Taxa: prior.TaxonSet{
				ID:   "root",
				Spec: "TaxonSet",
				Taxa: []string{"A", "B", "C", "D"},
			},
		},
		{
			ID:           "mrca_01.prior",
			Spec:         prior.DefaultSpec,
			Monophyletic: true,
			Tree:         prior.DefaultTree,
			Taxa: prior.TaxonSet{
				ID:   "mrca_01",
				Spec: "TaxonSet",
				Taxa: []string{"A", "B"},
			},
		},
		{
			ID:           "mrca_02.prior",
			Spec:         prior.DefaultSpec,
			Monophyletic: true,
			Tree:         prior.DefaultTree,
			Taxa: prior.TaxonSet{
				ID:   "mrca_02",
				Spec: "TaxonSet",
				Taxa: []string{"C", "D"},
			},
		},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks: mismatch (-want +got):\n%s", diff)
	}

	wantLogs := []string{"root.prior", "mrca_01.prior", "mrca_02.prior"}
	if diff := cmp.Diff(wantLogs, logs); diff != "" {
		t.Errorf("logs: mismatch (-want +got):\n%s", diff)
	}

	// labeling does not change the blocks
	tr.Label()
	again, _ := prior.Build(tr, prior.DefaultSpec, prior.DefaultTree)
	if diff := cmp.Diff(blocks, again); diff != "" {
		t.Errorf("after labeling: mismatch (-want +got):\n%s", diff)
	}
	for i, id := range tr.Internal() {
		if want := blocks[i].Taxa.ID; tr.Name(id) != want {
			t.Errorf("node %d: got label %q, want %q", id, tr.Name(id), want)
		}
	}
}

func TestBuildSizes(t *testing.T) {
	// a caterpillar tree with n terminals
	// has n-1 internal nodes
	for _, n := range []int{1, 2, 5, 120} {
		tr := tree.New()
		p, _ := tr.Add(-1, "")
		for i := 0; i < n; i++ {
			tr.Add(p, fmt.Sprintf("t%03d", i))
			if i < n-2 {
				p, _ = tr.Add(p, "")
			}
		}

		blocks, logs := prior.Build(tr, "spec", "tree")
		in := len(tr.Internal())
		if len(blocks) != in || len(logs) != in {
			t.Errorf("n=%d: got %d blocks, %d logs, want %d", n, len(blocks), len(logs), in)
			continue
		}
		for i, b := range blocks {
			want := "root"
			if i > 0 {
				want = tree.NodeID(i)
			}
			if b.Taxa.ID != want {
				t.Errorf("n=%d: block %d: got ID %q, want %q", n, i, b.Taxa.ID, want)
			}
			if b.Tree != "tree" || b.Spec != "spec" {
				t.Errorf("n=%d: block %d: got spec %q tree %q", n, i, b.Spec, b.Tree)
			}
		}
	}
}

func TestBuildSingleLeaf(t *testing.T) {
	tr := tree.New()
	tr.Add(-1, "A")
	blocks, logs := prior.Build(tr, prior.DefaultSpec, prior.DefaultTree)
	if len(blocks) != 0 || len(logs) != 0 {
		t.Errorf("single leaf: got %d blocks, %d logs, want none", len(blocks), len(logs))
	}
}

// element is a minimal in-memory document element.
type element struct {
	tag      string
	attr     []prior.Attr
	children []*element
}

func (e *element) AddChild(tag string, attr ...prior.Attr) prior.Element {
	c := &element{tag: tag, attr: attr}
	e.children = append(e.children, c)
	return c
}

func (e *element) id() string {
	for _, a := range e.attr {
		if a.Key == "id" {
			return a.Value
		}
	}
	return ""
}

func (e *element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *element) write(sb *strings.Builder) {
	fmt.Fprintf(sb, "<%s", e.tag)
	for _, a := range e.attr {
		fmt.Fprintf(sb, " %s=%q", a.Key, a.Value)
	}
	sb.WriteString(">")
	for _, c := range e.children {
		c.write(sb)
	}
	fmt.Fprintf(sb, "</%s>", e.tag)
}

type document struct {
	root *element
}

func (d document) Find(tag, id string) prior.Element {
	stack := []*element{d.root}
	for len(stack) > 0 {
		e := stack[0]
		stack = stack[1:]
		if e.tag == tag && e.id() == id {
			return e
		}
		stack = append(stack, e.children...)
	}
	return nil
}

func newDocument(hasPrior, hasLogger bool) document {
	root := &element{tag: "beast"}
	run := &element{tag: "run", attr: []prior.Attr{{"id", "mcmc"}}}
	root.children = append(root.children, run)
	if hasPrior {
		run.children = append(run.children, &element{tag: "distribution", attr: []prior.Attr{{"id", "prior"}}})
	}
	if hasLogger {
		run.children = append(run.children, &element{tag: "logger", attr: []prior.Attr{{"id", "tracelog"}}})
	}
	return document{root: root}
}

func TestMerge(t *testing.T) {
	tr := simpleTree(t)
	blocks, logs := prior.Build(tr, prior.DefaultSpec, "Tree.t:Species")

	doc := newDocument(true, true)
	if err := prior.Merge(doc, blocks, logs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<beast><run id="mcmc">` +
		`<distribution id="prior">` +
		`<distribution id="root.prior" spec="beast.math.distributions.MRCAPrior" monophyletic="true" tree="@Tree.t:Species">` +
		`<taxonset id="root" spec="TaxonSet"><taxon idref="A"></taxon><taxon idref="B"></taxon><taxon idref="C"></taxon><taxon idref="D"></taxon></taxonset>` +
		`</distribution>` +
		`<distribution id="mrca_01.prior" spec="beast.math.distributions.MRCAPrior" monophyletic="true" tree="@Tree.t:Species">` +
		`<taxonset id="mrca_01" spec="TaxonSet"><taxon idref="A"></taxon><taxon idref="B"></taxon></taxonset>` +
		`</distribution>` +
		`<distribution id="mrca_02.prior" spec="beast.math.distributions.MRCAPrior" monophyletic="true" tree="@Tree.t:Species">` +
		`<taxonset id="mrca_02" spec="TaxonSet"><taxon idref="C"></taxon><taxon idref="D"></taxon></taxonset>` +
		`</distribution>` +
		`</distribution>` +
		`<logger id="tracelog">` +
		`<log idref="root.prior"></log><log idref="mrca_01.prior"></log><log idref="mrca_02.prior"></log>` +
		`</logger>` +
		`</run></beast>`
	if diff := cmp.Diff(want, doc.root.String()); diff != "" {
		t.Errorf("merged document: mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeErrors(t *testing.T) {
	tr := simpleTree(t)
	blocks, logs := prior.Build(tr, prior.DefaultSpec, prior.DefaultTree)

	tests := map[string]struct {
		hasPrior  bool
		hasLogger bool
		err       error
	}{
		"no prior":  {false, true, prior.ErrNoPrior},
		"no logger": {true, false, prior.ErrNoLogger},
		"empty":     {false, false, prior.ErrNoPrior},
	}

	for name, test := range tests {
		doc := newDocument(test.hasPrior, test.hasLogger)
		before := doc.root.String()

		err := prior.Merge(doc, blocks, logs)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, want %v", name, err, test.err)
		}
		if after := doc.root.String(); after != before {
			t.Errorf("%s: document modified:\n%s", name, after)
		}
	}
}

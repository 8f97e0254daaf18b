// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netdesc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

// Decls returns the declarations of all non-sink modules of r, in registry
// order.
//
func Decls(r *pulsenet.Registry) []Decl {
	var ds []Decl
	for _, m := range r.Modules() {
		if m.Kind() == pulsenet.Sink {
			continue
		}
		ds = append(ds, Decl{Kind: m.Kind(), Name: m.Name(), Targets: m.Targets()})
	}
	return ds
}

// Format writes decls to w in the description format, one per line.
//
func Format(w io.Writer, decls []Decl) error {
	bw := bufio.NewWriter(w)
	for _, d := range decls {
		bw.WriteString(d.String())
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write network description")
}

var dotShapes = [...]string{
	pulsenet.Broadcast:   "box",
	pulsenet.FlipFlop:    "diamond",
	pulsenet.Conjunction: "invhouse",
	pulsenet.Sink:        "doublecircle",
}

// WriteDot writes the graph of r in Graphviz dot format. Edges are labeled with
// their position in the source's target list.
//
func WriteDot(w io.Writer, r *pulsenet.Registry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph pulsenet {\n")
	for _, m := range r.Modules() {
		fmt.Fprintf(bw, "\t%s [shape=%s];\n", strconv.Quote(m.Name()), dotShapes[m.Kind()])
	}
	for _, m := range r.Modules() {
		for i, t := range m.Targets() {
			fmt.Fprintf(bw, "\t%s -> %s [label=%d];\n", strconv.Quote(m.Name()), strconv.Quote(t), i)
		}
	}
	bw.WriteString("}\n")
	return errors.Wrap(bw.Flush(), "write dot graph")
}

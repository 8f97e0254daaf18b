// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netdesc reads and writes the textual description of pulse networks.
//
// Each non-blank line declares one module:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// The name prefix selects the module kind: none for broadcast modules, "%" for
// flip-flops and "&" for conjunctions. Lines starting with "#" are comments.
//
package netdesc

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/db47h/pulsenet"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const arrow = "->"

// Decl is a module declaration.
//
type Decl struct {
	Line    int // 1-based line number, 0 for generated declarations
	Kind    pulsenet.Kind
	Name    string
	Targets []string
}

// String returns the declaration in the description format.
//
func (d Decl) String() string {
	return d.Kind.Prefix() + d.Name + " " + arrow + " " + strings.Join(d.Targets, ", ")
}

// SyntaxError describes an invalid line.
//
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Msg
}

func syntaxError(line int, msg string) error {
	return &SyntaxError{Line: line, Msg: msg}
}

// Parse reads module declarations from r. All invalid lines are reported in a
// single *multierror.Error whose elements are *SyntaxError.
//
func Parse(r io.Reader) ([]Decl, error) {
	var (
		decls []Decl
		merr  *multierror.Error
		seen  = make(map[string]int)
	)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		l := strings.TrimSpace(s.Text())
		if l == "" || l[0] == '#' {
			continue
		}
		d, err := parseLine(line, l)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if prev, ok := seen[d.Name]; ok {
			merr = multierror.Append(merr, syntaxError(line, "module "+d.Name+" already declared at line "+strconv.Itoa(prev)))
			continue
		}
		seen[d.Name] = line
		decls = append(decls, d)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read network description")
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return decls, nil
}

func parseLine(line int, l string) (Decl, error) {
	d := Decl{Line: line, Kind: pulsenet.Broadcast}
	i := strings.Index(l, arrow)
	if i < 0 {
		return d, syntaxError(line, "missing "+arrow)
	}
	name, rhs := strings.TrimSpace(l[:i]), strings.TrimSpace(l[i+len(arrow):])
	switch {
	case strings.HasPrefix(name, "%"):
		d.Kind = pulsenet.FlipFlop
		name = name[1:]
	case strings.HasPrefix(name, "&"):
		d.Kind = pulsenet.Conjunction
		name = name[1:]
	}
	if !isIdent(name) {
		return d, syntaxError(line, "invalid module name "+strconv.Quote(name))
	}
	if name == pulsenet.Button {
		return d, syntaxError(line, "module name "+pulsenet.Button+" is reserved")
	}
	if name == pulsenet.Broadcaster && d.Kind != pulsenet.Broadcast {
		return d, syntaxError(line, pulsenet.Broadcaster+" must be a broadcast module")
	}
	d.Name = name
	if rhs == "" {
		return d, nil
	}
	for _, t := range strings.Split(rhs, ",") {
		t = strings.TrimSpace(t)
		if !isIdent(t) {
			return d, syntaxError(line, "invalid target name "+strconv.Quote(t))
		}
		d.Targets = append(d.Targets, t)
	}
	return d, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// Define declares every module of decls in r.
//
func Define(r *pulsenet.Registry, decls []Decl) {
	for _, d := range decls {
		r.Define(d.Name, d.Kind, d.Targets...)
	}
}

// Load parses a network description and returns a registry with all declared
// modules.
//
func Load(rd io.Reader) (*pulsenet.Registry, error) {
	decls, err := Parse(rd)
	if err != nil {
		return nil, err
	}
	r := pulsenet.NewRegistry()
	Define(r, decls)
	return r, nil
}

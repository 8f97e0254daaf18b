// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "strconv"

// Level is the level of a pulse.
//
type Level uint8

// Pulse levels.
//
const (
	Low Level = iota
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Kind identifies the transition rule of a module.
//
type Kind uint8

// Module kinds.
//
const (
	// Broadcast modules forward every pulse unchanged to all their targets.
	Broadcast Kind = iota
	// FlipFlop modules toggle on low pulses and ignore high pulses.
	FlipFlop
	// Conjunction modules remember the last level received from each input
	// and send low only when all of them are high.
	Conjunction
	// Sink modules have no targets. They only count what they receive.
	Sink
)

var kindNames = [...]string{
	Broadcast:   "broadcast",
	FlipFlop:    "flip-flop",
	Conjunction: "conjunction",
	Sink:        "sink",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Prefix returns the declaration prefix of the kind in the network description
// format: "%" for flip-flops, "&" for conjunctions and "" for everything else.
//
func (k Kind) Prefix() string {
	switch k {
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	}
	return ""
}

// A Pulse is a signal sent from one module to another.
//
type Pulse struct {
	Source string
	Target string
	Level  Level
}

// String returns the pulse in the "a -high-> b" form.
//
func (p Pulse) String() string {
	return p.Source + " -" + p.Level.String() + "-> " + p.Target
}

// Tally counts low and high pulses.
//
type Tally struct {
	Low  uint64 `json:"low" yaml:"low"`
	High uint64 `json:"high" yaml:"high"`
}

// Count adds one pulse of level l to the tally.
//
func (t *Tally) Count(l Level) {
	if l == High {
		t.High++
	} else {
		t.Low++
	}
}

// Add adds the counts in o to t.
//
func (t *Tally) Add(o Tally) {
	t.Low += o.Low
	t.High += o.High
}

// Total returns the total number of pulses in the tally.
//
func (t Tally) Total() uint64 { return t.Low + t.High }

// Product returns Low * High.
//
func (t Tally) Product() uint64 { return t.Low * t.High }

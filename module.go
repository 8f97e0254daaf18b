// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// Input is an entry in a conjunction's input table.
//
type Input struct {
	Name  string `json:"name" yaml:"name"`
	Level Level  `json:"level" yaml:"level"`
}

// A Module is a node in a network. Modules are created by a Registry and
// mutated in place by the Network that owns it.
//
type Module struct {
	name    string
	kind    Kind
	targets []string

	// flip-flop state
	on bool

	// conjunction input table. names keeps discovery order, index maps a
	// name to its position in names and levels.
	names  []string
	levels []Level
	index  map[string]int
	lows   int // number of Low entries in levels

	presses  uint64    // counter module only
	received [2]uint64 // pulses received, by level
}

// Name returns the module name.
//
func (m *Module) Name() string { return m.name }

// Kind returns the module kind.
//
func (m *Module) Kind() Kind { return m.kind }

// Targets returns a copy of the module's outgoing targets, in emission order.
//
func (m *Module) Targets() []string {
	t := make([]string, len(m.targets))
	copy(t, m.targets)
	return t
}

// On returns the state of a flip-flop. It always returns false for other kinds.
//
func (m *Module) On() bool { return m.on }

// Inputs returns a snapshot of a conjunction's input table in discovery order.
//
func (m *Module) Inputs() []Input {
	in := make([]Input, len(m.names))
	for i, n := range m.names {
		in[i] = Input{n, m.levels[i]}
	}
	return in
}

// HasInput returns true if name is a known input of a conjunction.
//
func (m *Module) HasInput(name string) bool {
	_, ok := m.index[name]
	return ok
}

// AnyLow returns true if the conjunction's input table contains at least one
// low entry.
//
func (m *Module) AnyLow() bool { return m.lows > 0 }

// Presses returns the number of pulses received by the distinguished counter
// module (the broadcaster). This is the index of the current press.
//
func (m *Module) Presses() uint64 { return m.presses }

// Received returns how many pulses of level l the module has received since it
// was created.
//
func (m *Module) Received(l Level) uint64 { return m.received[l&1] }

// addInput inserts name in the input table with a low level. It is a no-op if
// name is already known.
//
func (m *Module) addInput(name string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, ok := m.index[name]; ok {
		return
	}
	m.index[name] = len(m.names)
	m.names = append(m.names, name)
	m.levels = append(m.levels, Low)
	m.lows++
}

// setInput records the last level received from a known input.
//
func (m *Module) setInput(name string, l Level) {
	i, ok := m.index[name]
	if !ok {
		return
	}
	switch prev := m.levels[i]; {
	case prev == Low && l == High:
		m.lows--
	case prev == High && l == Low:
		m.lows++
	}
	m.levels[i] = l
}

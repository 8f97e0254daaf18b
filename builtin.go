// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "github.com/pkg/errors"

// apply updates the state of m for the received pulse p and returns the level
// to send to all of m's targets. If emit is false, nothing is sent.
//
func (m *Module) apply(p Pulse) (out Level, emit bool) {
	m.received[p.Level&1]++

	switch m.kind {
	case Broadcast:
		if m.name == Broadcaster {
			m.presses++
		}
		return p.Level, true
	case FlipFlop:
		if p.Level == High {
			return Low, false
		}
		m.on = !m.on
		if m.on {
			return High, true
		}
		return Low, true
	case Conjunction:
		// NAND: low only if every known input is high.
		m.setInput(p.Source, p.Level)
		if m.lows == 0 {
			return Low, true
		}
		return High, true
	case Sink:
		return Low, false
	}
	panic(errors.Errorf("module %q has invalid kind %v", m.name, m.kind))
}

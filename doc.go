/*
Package pulsenet provides a discrete-event simulator for networks of modules
exchanging low and high pulses.

A network is a fixed directed graph of named modules. Each module has a kind
that decides how it reacts to pulses:

	broadcast    forwards the received level to all its targets
	flip-flop    ignores high pulses; on low pulses, toggles and sends high
	             when turned on, low when turned off
	conjunction  remembers the last level received from each input and sends
	             low if all are high, high otherwise (a NAND gate)
	sink         receives pulses and sends nothing

Modules are declared in a Registry. Targets that are never declared become
sinks. A Network wires the registry and runs it one press at a time: a press
sends a low pulse from the button to the broadcaster and dispatches pulses in
strict FIFO order until none remain.

	r := pulsenet.NewRegistry()
	r.Define("broadcaster", pulsenet.Broadcast, "a")
	r.Define("a", pulsenet.FlipFlop, "inv", "con")
	r.Define("inv", pulsenet.Conjunction, "b")
	r.Define("b", pulsenet.FlipFlop, "con")
	r.Define("con", pulsenet.Conjunction, "output")
	n := pulsenet.NewNetwork(r)
	t, err := n.RunN(1000)
	// t.Product() == 11687500

Finding the first press at which some terminal module receives a low pulse may
take far too many presses to simulate. Extrapolate handles the networks where
the terminal is fed by independent binary counters: it records the first epoch
at which each conjunction holds a low input and returns their least common
multiple.

*/
package pulsenet

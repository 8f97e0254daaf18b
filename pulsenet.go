// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Default limits.
//
const (
	DefaultMaxSteps = 1 << 20
	DefaultTerminal = "rx"
)

// An Observer is notified of every pulse dispatched by a Network, after the
// target module has been updated and its outgoing pulses queued.
//
// Observers must not modify the module.
//
type Observer interface {
	Dispatched(epoch int, p Pulse, m *Module)
}

// ObserverFunc is an adapter to use ordinary functions as Observers.
//
type ObserverFunc func(epoch int, p Pulse, m *Module)

// Dispatched calls f(epoch, p, m).
//
func (f ObserverFunc) Dispatched(epoch int, p Pulse, m *Module) { f(epoch, p, m) }

// An Option configures a Network.
//
type Option func(n *Network)

// WithMaxSteps sets the maximum number of pulses dispatched in a single epoch.
// Values <= 0 select DefaultMaxSteps.
//
func WithMaxSteps(steps int) Option {
	return func(n *Network) {
		if steps <= 0 {
			steps = DefaultMaxSteps
		}
		n.maxSteps = uint64(steps)
	}
}

// WithTerminal sets the name of the terminal module watched by Press.
//
func WithTerminal(name string) Option {
	return func(n *Network) { n.terminal = name }
}

// WithObserver adds an observer to the network. Observers are called in the
// order they were added.
//
func WithObserver(o Observer) Option {
	return func(n *Network) { n.obs = append(n.obs, o) }
}

// WithLogger sets the logger used by the network.
//
func WithLogger(l hclog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// EpochResult is the outcome of a single press.
//
type EpochResult struct {
	Epoch       int   `json:"epoch" yaml:"epoch"`
	Tally       Tally `json:"tally" yaml:"tally"`
	TerminalLow bool  `json:"terminal_low" yaml:"terminal_low"`
}

// Network is a runnable pulse network simulation.
//
// A Network is not safe for concurrent use. Epochs are strictly sequential.
//
type Network struct {
	r        *Registry
	q        queue
	epoch    int
	maxSteps uint64
	terminal string
	obs      []Observer
	log      hclog.Logger
}

// NewNetwork wires the modules in r and returns a network ready to be pressed.
// The broadcaster module is materialized if r does not define it.
//
// The network takes ownership of r: modules must not be redefined once the
// network is created.
//
func NewNetwork(r *Registry, opts ...Option) *Network {
	n := &Network{
		r:        r,
		maxSteps: DefaultMaxSteps,
		terminal: DefaultTerminal,
		log:      hclog.NewNullLogger(),
	}
	for _, o := range opts {
		o(n)
	}
	r.Resolve(Broadcaster)
	r.Wire()
	return n
}

// Registry returns the network's registry.
//
func (n *Network) Registry() *Registry { return n.r }

// Terminal returns the name of the terminal module.
//
func (n *Network) Terminal() string { return n.terminal }

// Epoch returns the number of the last epoch started. It is 0 before the first
// press.
//
func (n *Network) Epoch() int { return n.epoch }

// Pending returns the number of queued pulses.
//
func (n *Network) Pending() int { return n.q.len() }

// Send queues a pulse. The target module must exist and, if it is a
// conjunction, the source must be one of its inputs.
//
func (n *Network) Send(p Pulse) error {
	m, ok := n.r.Lookup(p.Target)
	if !ok {
		return errors.Wrap(ErrUnknownModule, p.Target)
	}
	if m.kind == Conjunction && !m.HasInput(p.Source) {
		return errors.Wrap(ErrNotAnInput, p.String())
	}
	n.q.push(p)
	return nil
}

// Step dispatches the pulse at the head of the queue. It returns the dispatched
// pulse and true, or false if the queue was empty.
//
func (n *Network) Step() (Pulse, bool) {
	p, ok := n.q.pop()
	if !ok {
		return p, false
	}
	m := n.r.Resolve(p.Target)
	out, emit := m.apply(p)
	if n.log.IsTrace() {
		n.log.Trace("pulse", "epoch", n.epoch, "pulse", p.String())
	}
	if emit {
		for _, t := range m.targets {
			n.q.push(Pulse{Source: m.name, Target: t, Level: out})
		}
	}
	for _, o := range n.obs {
		o.Dispatched(n.epoch, p, m)
	}
	return p, true
}

// Drain steps the simulation until the queue is empty and returns the number
// of low and high pulses dispatched.
//
// If the queue is still not empty after the maximum number of steps, the
// pending pulses are dropped and a *QuiescenceError is returned. The module
// states are then undefined.
//
func (n *Network) Drain() (Tally, error) {
	var t Tally
	for {
		if t.Total() >= n.maxSteps && n.q.len() > 0 {
			n.log.Warn("epoch did not quiesce", "epoch", n.epoch, "steps", t.Total(), "pending", n.q.len())
			n.q.reset()
			return t, errors.WithStack(&QuiescenceError{Epoch: n.epoch, Steps: t.Total()})
		}
		p, ok := n.Step()
		if !ok {
			return t, nil
		}
		t.Count(p.Level)
	}
}

// Press starts a new epoch by sending a low pulse from the button to the
// broadcaster and runs the simulation until no pulses remain.
//
// The returned tally includes the button pulse. TerminalLow is set if the
// terminal module received at least one low pulse during the epoch.
//
func (n *Network) Press() (EpochResult, error) {
	n.epoch++
	term, _ := n.r.Lookup(n.terminal)
	var lows uint64
	if term != nil {
		lows = term.Received(Low)
	}
	n.q.push(Pulse{Source: Button, Target: Broadcaster, Level: Low})
	t, err := n.Drain()
	res := EpochResult{Epoch: n.epoch, Tally: t}
	if err != nil {
		return res, err
	}
	res.TerminalLow = term != nil && term.Received(Low) > lows
	n.log.Debug("epoch done", "epoch", n.epoch, "low", t.Low, "high", t.High, "terminal_low", res.TerminalLow)
	return res, nil
}

// RunN presses the button count times and returns the sum of the pulses
// dispatched over all epochs.
//
func (n *Network) RunN(count int) (Tally, error) {
	var sum Tally
	for i := 0; i < count; i++ {
		r, err := n.Press()
		sum.Add(r.Tally)
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// RunUntilTerminalLow presses the button until the terminal module receives a
// low pulse and returns the epoch number when that happened.
//
// It gives up after maxPresses presses and returns ErrTerminalNotReached.
//
func (n *Network) RunUntilTerminalLow(maxPresses int) (int, error) {
	if _, ok := n.r.Lookup(n.terminal); !ok {
		return 0, errors.Wrap(ErrUnknownModule, "terminal "+n.terminal)
	}
	for i := 0; i < maxPresses; i++ {
		r, err := n.Press()
		if err != nil {
			return 0, err
		}
		if r.TerminalLow {
			return r.Epoch, nil
		}
	}
	return 0, errors.Wrapf(ErrTerminalNotReached, "%s after %d presses", n.terminal, maxPresses)
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"math/bits"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Onset is the first epoch at which a candidate module was seen with a low
// entry in its input table.
//
type Onset struct {
	Name  string `json:"name" yaml:"name"`
	Epoch uint64 `json:"epoch" yaml:"epoch"`
}

// An Extrapolator watches conjunctions while a network runs and records their
// onset epoch. In networks where every conjunction is part of a binary counter
// whose onset equals its period, and where the terminal module receives a low
// pulse only when all counters fire in the same epoch, the first epoch at which
// that happens is the least common multiple of the onsets.
//
// The Extrapolator does not verify that the network has this structure.
//
type Extrapolator struct {
	want   map[string]bool
	onsets map[string]uint64
	log    hclog.Logger
}

// NewExtrapolator returns an Extrapolator watching the named candidates.
//
func NewExtrapolator(candidates ...string) *Extrapolator {
	x := &Extrapolator{
		want:   make(map[string]bool, len(candidates)),
		onsets: make(map[string]uint64, len(candidates)),
		log:    hclog.NewNullLogger(),
	}
	for _, c := range candidates {
		x.want[c] = true
	}
	return x
}

// ConjunctionCandidates returns the names of all conjunctions in r.
//
func ConjunctionCandidates(r *Registry) []string {
	var cs []string
	for _, m := range r.Modules() {
		if m.kind == Conjunction {
			cs = append(cs, m.name)
		}
	}
	return cs
}

// SetLogger sets the logger used to report onsets.
//
func (x *Extrapolator) SetLogger(l hclog.Logger) {
	if l != nil {
		x.log = l
	}
}

// Dispatched implements Observer.
//
func (x *Extrapolator) Dispatched(epoch int, p Pulse, m *Module) {
	if m.kind != Conjunction || !x.want[m.name] || !m.AnyLow() {
		return
	}
	if _, ok := x.onsets[m.name]; ok {
		return
	}
	x.onsets[m.name] = uint64(epoch)
	x.log.Debug("onset", "module", m.name, "epoch", epoch, "recorded", len(x.onsets), "candidates", len(x.want))
}

// Done returns true once every candidate has an onset.
//
func (x *Extrapolator) Done() bool { return len(x.onsets) == len(x.want) }

// Onsets returns the recorded onsets sorted by module name.
//
func (x *Extrapolator) Onsets() []Onset {
	ons := make([]Onset, 0, len(x.onsets))
	for n, e := range x.onsets {
		ons = append(ons, Onset{n, e})
	}
	sort.Slice(ons, func(i, j int) bool { return ons[i].Name < ons[j].Name })
	return ons
}

// Missing returns the sorted names of candidates without an onset.
//
func (x *Extrapolator) Missing() []string {
	var ms []string
	for n := range x.want {
		if _, ok := x.onsets[n]; !ok {
			ms = append(ms, n)
		}
	}
	sort.Strings(ms)
	return ms
}

// LCM returns the least common multiple of the recorded onsets.
//
func (x *Extrapolator) LCM() (uint64, error) {
	vs := make([]uint64, 0, len(x.onsets))
	for _, e := range x.onsets {
		vs = append(vs, e)
	}
	return LCM(vs...)
}

// Extrapolation is the result of Extrapolate.
//
type Extrapolation struct {
	Onsets  []Onset `json:"onsets" yaml:"onsets"`
	Presses int     `json:"presses" yaml:"presses"` // presses actually simulated
	Epoch   uint64  `json:"epoch" yaml:"epoch"`     // predicted first terminal low
	Product uint64  `json:"product" yaml:"product"` // product of onsets, 0 on overflow
}

// Extrapolate presses the button of n until every conjunction in the network
// has recorded an onset, then predicts the first epoch at which the terminal
// module receives a low pulse as the LCM of the onsets.
//
// n must not have been pressed before, or ErrPressed is returned. If the
// network has no conjunctions, or if some conjunctions have no onset after
// maxPresses presses, a *TopologyError is returned.
//
func Extrapolate(n *Network, maxPresses int) (Extrapolation, error) {
	if n.epoch != 0 {
		return Extrapolation{}, errors.Wrapf(ErrPressed, "epoch %d", n.epoch)
	}
	x := NewExtrapolator(ConjunctionCandidates(n.r)...)
	x.SetLogger(n.log.Named("extrapolator"))
	n.obs = append(n.obs, x)
	defer func() {
		// remove x from the observers
		for i, o := range n.obs {
			if o == Observer(x) {
				n.obs = append(n.obs[:i], n.obs[i+1:]...)
				break
			}
		}
	}()

	var res Extrapolation
	if len(x.want) == 0 {
		return res, errors.WithStack(&TopologyError{})
	}
	for !x.Done() {
		if res.Presses >= maxPresses {
			return res, errors.WithStack(&TopologyError{Presses: res.Presses, Missing: x.Missing()})
		}
		if _, err := n.Press(); err != nil {
			return res, err
		}
		res.Presses++
	}
	res.Onsets = x.Onsets()
	l, err := x.LCM()
	if err != nil {
		return res, err
	}
	res.Epoch = l
	res.Product = product(res.Onsets)
	n.log.Debug("extrapolated", "presses", res.Presses, "epoch", res.Epoch)
	return res, nil
}

func product(ons []Onset) uint64 {
	p := uint64(1)
	for _, o := range ons {
		hi, lo := bits.Mul64(p, o.Epoch)
		if hi != 0 {
			return 0
		}
		p = lo
	}
	return p
}

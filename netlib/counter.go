// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib

import (
	"math/bits"
	"strconv"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

// Counter declares a binary counter that sends a single high pulse to out
// every period presses. Its entry point is returned and must be targeted by
// the broadcaster.
//
// The counter is a chain of flip-flops prefix0 ... prefixN where N+1 is the bit
// length of period. Flip-flops for the 1 bits of period feed the conjunction
// prefix+"c". When they are all on, prefix+"c" sends low to the flip-flops for
// the 0 bits, turning them on, and to prefix0, which carries through the whole
// chain and resets the counter to 0. The inverter prefix+"x" turns the low
// pulse of prefix+"c" into a high pulse to out.
//
// period must be odd and >= 3.
//
func Counter(r *pulsenet.Registry, prefix string, period uint64, out string) (entry string, err error) {
	if period < 3 || period&1 == 0 {
		return "", errors.Errorf("invalid counter period %d: must be odd and >= 3", period)
	}
	n := bits.Len64(period)
	ff := func(i int) string { return prefix + strconv.Itoa(i) }
	conj, inv := prefix+"c", prefix+"x"

	var reset []string
	for i := 0; i < n; i++ {
		var ts []string
		if i+1 < n {
			ts = append(ts, ff(i+1))
		}
		if period&(1<<uint(i)) != 0 {
			ts = append(ts, conj)
		} else {
			reset = append(reset, ff(i))
		}
		Toggle(r, ff(i), ts...)
	}
	reset = append(reset, ff(0), inv)
	r.Define(conj, pulsenet.Conjunction, reset...)
	Inverter(r, inv, out)
	return ff(0), nil
}

// Periodic returns a registry with one counter per period, all of them driven
// by the broadcaster. The counter outputs feed the conjunction "hub" which
// targets "rx". Counter i uses the prefix "k<i>_".
//
// rx receives its first low pulse at the press number equal to the least
// common multiple of the periods.
//
func Periodic(periods ...uint64) (*pulsenet.Registry, error) {
	r := pulsenet.NewRegistry()
	b := r.Define(pulsenet.Broadcaster, pulsenet.Broadcast)
	var entries []string
	for i, p := range periods {
		e, err := Counter(r, "k"+strconv.Itoa(i)+"_", p, "hub")
		if err != nil {
			return nil, errors.Wrapf(err, "counter %d", i)
		}
		entries = append(entries, e)
	}
	r.Define("hub", pulsenet.Conjunction, pulsenet.DefaultTerminal)
	r.Define(b.Name(), pulsenet.Broadcast, entries...)
	return r, nil
}

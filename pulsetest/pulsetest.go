// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/netdesc"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Load parses a network description and fails the test on error.
//
func Load(t testing.TB, desc string) *pulsenet.Registry {
	t.Helper()
	r, err := netdesc.Load(strings.NewReader(desc))
	require.NoError(t, err, "load network description")
	return r
}

// Recorder is a pulsenet.Observer that records every dispatched pulse, one per
// line, with a "# press N" header at the start of each epoch.
//
type Recorder struct {
	b     strings.Builder
	epoch int
}

// Dispatched implements pulsenet.Observer.
//
func (r *Recorder) Dispatched(epoch int, p pulsenet.Pulse, _ *pulsenet.Module) {
	if epoch != r.epoch {
		r.epoch = epoch
		r.b.WriteString("# press ")
		r.b.WriteString(strconv.Itoa(epoch))
		r.b.WriteByte('\n')
	}
	r.b.WriteString(p.String())
	r.b.WriteByte('\n')
}

// String returns the recorded trace.
//
func (r *Recorder) String() string { return r.b.String() }

// Trace presses the button of a new network built from r the given number of
// times and returns the recorded pulse trace.
//
func Trace(t testing.TB, r *pulsenet.Registry, presses int) string {
	t.Helper()
	var rec Recorder
	n := pulsenet.NewNetwork(r, pulsenet.WithObserver(&rec))
	_, err := n.RunN(presses)
	require.NoError(t, err)
	return rec.String()
}

// AssertTrace compares the pulse trace of the given number of presses against
// the golden file testdata/golden/<name>.golden.
//
// To regenerate golden files, run the tests with -update.
//
func AssertTrace(t *testing.T, name string, r *pulsenet.Registry, presses int) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(Trace(t, r, presses)))
}

// CompareFirstLow checks that extrapolating the first terminal low gives the
// same result as a brute-force simulation. build must return a new registry
// for the same network on each call.
//
// It returns the epoch found.
//
func CompareFirstLow(t testing.TB, build func() *pulsenet.Registry, maxPresses int) int {
	t.Helper()
	x, err := pulsenet.Extrapolate(pulsenet.NewNetwork(build()), maxPresses)
	require.NoError(t, err, "extrapolate")
	epoch, err := pulsenet.NewNetwork(build()).RunUntilTerminalLow(maxPresses)
	require.NoError(t, err, "simulate")
	require.Equal(t, uint64(epoch), x.Epoch, "extrapolated epoch with onsets %v", x.Onsets)
	return epoch
}

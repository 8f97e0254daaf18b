// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet_test

import (
	"math"
	"testing"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/netlib"
	"github.com/db47h/pulsenet/pulsetest"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two counters with periods 3 and 4 feeding a shared conjunction. The relay d
// aligns the output of the period 3 counter with the other one.
const counters3x4 = `
broadcaster -> d, b0
d -> a0
%a0 -> ca, a1
%a1 -> ca
&ca -> a0, ia
&ia -> fin
%b0 -> b1
%b1 -> b2
%b2 -> cb
&cb -> b1, b0, ib, b0
&ib -> fin
&fin -> rx
`

func TestExtrapolate_counters3x4(t *testing.T) {
	x, err := pulsenet.Extrapolate(pulsenet.NewNetwork(pulsetest.Load(t, counters3x4)), 100)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	want := pulsenet.Extrapolation{
		Onsets: []pulsenet.Onset{
			{Name: "ca", Epoch: 1},
			{Name: "cb", Epoch: 4},
			{Name: "fin", Epoch: 1},
			{Name: "ia", Epoch: 3},
			{Name: "ib", Epoch: 4},
		},
		Presses: 4,
		Epoch:   12,
		Product: 48,
	}
	if diff := cmp.Diff(want, x); diff != "" {
		t.Errorf("Extrapolate mismatch (-want +got):\n%s", diff)
	}

	epoch := pulsetest.CompareFirstLow(t, func() *pulsenet.Registry { return pulsetest.Load(t, counters3x4) }, 100)
	assert.Equal(t, 12, epoch)
}

func TestExtrapolate_periodic(t *testing.T) {
	td := []struct {
		name    string
		periods []uint64
		epoch   uint64
	}{
		{"single", []uint64{5}, 5},
		{"11x13", []uint64{11, 13}, 143},
		{"3x5x7", []uint64{3, 5, 7}, 105},
		{"9x13x15", []uint64{9, 13, 15}, 585},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			build := func() *pulsenet.Registry {
				r, err := netlib.Periodic(d.periods...)
				require.NoError(t, err)
				return r
			}
			x, err := pulsenet.Extrapolate(pulsenet.NewNetwork(build()), 1000)
			require.NoError(t, err)
			assert.Equal(t, d.epoch, x.Epoch)
			var max uint64
			for _, p := range d.periods {
				if p > max {
					max = p
				}
			}
			assert.EqualValues(t, max, x.Presses)

			pulsetest.CompareFirstLow(t, build, 1000)
		})
	}
}

// Only extrapolation can get there in reasonable time.
func TestExtrapolate_large(t *testing.T) {
	periods := []uint64{3739, 3761, 3797, 3889}
	r, err := netlib.Periodic(periods...)
	require.NoError(t, err)
	x, err := pulsenet.Extrapolate(pulsenet.NewNetwork(r), 5000)
	require.NoError(t, err)
	assert.Equal(t, uint64(3739*3761*3797*3889), x.Epoch)
	assert.Equal(t, x.Epoch, x.Product)
	assert.Equal(t, 3889, x.Presses)
}

func TestExtrapolate_unsupported(t *testing.T) {
	td := []struct {
		name    string
		desc    string
		presses int
		missing []string
	}{
		{"never_pulsed", "broadcaster -> a\n%a -> out\n&z -> out", 50, []string{"z"}},
		{"no_conjunction", chain, 0, nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := pulsenet.Extrapolate(pulsenet.NewNetwork(pulsetest.Load(t, d.desc)), 50)
			require.Error(t, err)
			assert.True(t, pulsenet.IsTopology(err))
			var te *pulsenet.TopologyError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, d.presses, te.Presses)
			assert.Equal(t, d.missing, te.Missing)
		})
	}
}

func TestExtrapolate_pressed(t *testing.T) {
	r, err := netlib.Periodic(3, 5)
	require.NoError(t, err)
	n := pulsenet.NewNetwork(r)
	_, err = n.RunN(4)
	require.NoError(t, err)

	x, err := pulsenet.Extrapolate(n, 100)
	assert.Equal(t, pulsenet.ErrPressed, errors.Cause(err))
	assert.Zero(t, x.Epoch)
	assert.Equal(t, 4, n.Epoch())
}

func TestExtrapolator_observer(t *testing.T) {
	x := pulsenet.NewExtrapolator("ia", "ib")
	n := pulsenet.NewNetwork(pulsetest.Load(t, counters3x4), pulsenet.WithObserver(x))
	for i := 0; i < 3; i++ {
		_, err := n.Press()
		require.NoError(t, err)
	}
	assert.False(t, x.Done())
	assert.Equal(t, []string{"ib"}, x.Missing())
	_, err := n.Press()
	require.NoError(t, err)
	assert.True(t, x.Done())
	l, err := x.LCM()
	require.NoError(t, err)
	assert.EqualValues(t, 12, l)
}

func TestLCM(t *testing.T) {
	td := []struct {
		vs  []uint64
		lcm uint64
		err error
	}{
		{nil, 1, nil},
		{[]uint64{7}, 7, nil},
		{[]uint64{3, 4}, 12, nil},
		{[]uint64{4, 6}, 12, nil},
		{[]uint64{1, 1, 3, 4, 4}, 12, nil},
		{[]uint64{0, 5}, 0, nil},
		{[]uint64{1 << 63, 3}, 0, pulsenet.ErrOverflow},
		{[]uint64{math.MaxUint32, math.MaxUint32 + 2}, math.MaxUint32 * (math.MaxUint32 + 2), nil},
	}
	for _, d := range td {
		l, err := pulsenet.LCM(d.vs...)
		assert.Equal(t, d.err, errors.Cause(err), "LCM(%v)", d.vs)
		assert.Equal(t, d.lcm, l, "LCM(%v)", d.vs)
	}
}

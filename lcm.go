// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"math/bits"

	"github.com/pkg/errors"
)

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of vs. It returns 1 for an empty list
// and 0 if any value is 0.
//
func LCM(vs ...uint64) (uint64, error) {
	l := uint64(1)
	for _, v := range vs {
		if v == 0 {
			return 0, nil
		}
		hi, lo := bits.Mul64(l/gcd(l, v), v)
		if hi != 0 {
			return 0, errors.Wrapf(ErrOverflow, "lcm of %v", vs)
		}
		l = lo
	}
	return l, nil
}

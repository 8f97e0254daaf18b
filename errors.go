// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownModule is returned when a module name given by the caller does
	// not exist in the network.
	ErrUnknownModule = errors.New("unknown module")
	// ErrNotAnInput is returned by Send when a pulse targets a conjunction
	// from a module that is not one of its inputs.
	ErrNotAnInput = errors.New("source is not an input of the target conjunction")
	// ErrTerminalNotReached is returned by RunUntilTerminalLow when the
	// terminal module did not receive a low pulse within the press limit.
	ErrTerminalNotReached = errors.New("terminal module did not receive a low pulse")
	// ErrPressed is returned by Extrapolate when the network has already
	// been pressed.
	ErrPressed = errors.New("network already pressed")
	// ErrOverflow is returned when a least common multiple does not fit in
	// 64 bits.
	ErrOverflow = errors.New("uint64 overflow")
)

// QuiescenceError is returned when a pulse queue did not empty within the
// configured number of steps.
//
type QuiescenceError struct {
	Epoch int    // epoch during which the limit was hit
	Steps uint64 // number of pulses dispatched
}

func (e *QuiescenceError) Error() string {
	return "epoch " + strconv.Itoa(e.Epoch) + " did not quiesce after " + strconv.FormatUint(e.Steps, 10) + " pulses"
}

// TopologyError is returned by the extrapolator when some candidates never
// recorded an onset. The network does not have the periodic structure the
// extrapolator relies on.
//
type TopologyError struct {
	Presses int      // presses simulated
	Missing []string // candidates without onset
}

func (e *TopologyError) Error() string {
	if len(e.Missing) == 0 {
		return "unsupported topology: no candidate modules"
	}
	return "unsupported topology: no onset after " + strconv.Itoa(e.Presses) + " presses for " + strings.Join(e.Missing, ", ")
}

// IsQuiescence returns true if the cause of err is a *QuiescenceError.
//
func IsQuiescence(err error) bool {
	_, ok := errors.Cause(err).(*QuiescenceError)
	return ok
}

// IsTopology returns true if the cause of err is a *TopologyError.
//
func IsTopology(err error) bool {
	_, ok := errors.Cause(err).(*TopologyError)
	return ok
}

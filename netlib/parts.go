// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlib provides a library of reusable subnetworks for pulsenet.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package netlib

import "github.com/db47h/pulsenet"

// Relay declares a broadcast module that forwards pulses unchanged. Relays
// delay a signal by one dispatch level.
//
//	Inputs: any
//	Outputs: out...
//	Function: out = in
//
func Relay(r *pulsenet.Registry, name string, out ...string) {
	r.Define(name, pulsenet.Broadcast, out...)
}

// Inverter declares a conjunction meant to have a single input.
//
//	Inputs: in
//	Outputs: out...
//	Function: out = !in
//
func Inverter(r *pulsenet.Registry, name string, out ...string) {
	r.Define(name, pulsenet.Conjunction, out...)
}

// Toggle declares a flip-flop.
//
//	Inputs: any
//	Outputs: out...
//	Function: on low input, on = !on, out = on
//
func Toggle(r *pulsenet.Registry, name string, out ...string) {
	r.Define(name, pulsenet.FlipFlop, out...)
}

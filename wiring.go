// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// Wire materializes every module referenced as a target and seeds the input
// table of every conjunction with the modules that target it, all set to Low.
//
// Wire must be called after the last call to Define and before the first pulse
// is dispatched. Calling it more than once has no further effect.
//
func (r *Registry) Wire() {
	// Resolve may append to r.order, so iterate by index. Modules created here
	// are sinks and have no targets.
	for i := 0; i < len(r.order); i++ {
		m := r.order[i]
		for _, t := range m.targets {
			if tm := r.Resolve(t); tm.kind == Conjunction {
				tm.addInput(m.name)
			}
		}
	}
}

// Sources returns the names of the modules that have name in their targets, in
// registry order. A module targeting name several times is listed once.
//
func (r *Registry) Sources(name string) []string {
	var src []string
	for _, m := range r.order {
		for _, t := range m.targets {
			if t == name {
				src = append(src, m.name)
				break
			}
		}
	}
	return src
}

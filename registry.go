// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// Reserved module names.
//
const (
	// Button is the source of the synthetic pulse sent on each press.
	Button = "button"
	// Broadcaster is the module receiving the button pulse. It also counts
	// presses.
	Broadcaster = "broadcaster"
)

// A Registry owns all the modules of a network and maps module names to
// module records.
//
type Registry struct {
	m     map[string]*Module
	order []*Module
}

// NewRegistry returns a new empty registry.
//
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Module)}
}

// Define records the kind and targets of the named module. If the module
// already exists, its kind and targets are overwritten and its state is reset,
// but it keeps its original position in Modules().
//
func (r *Registry) Define(name string, kind Kind, targets ...string) *Module {
	m, ok := r.m[name]
	if !ok {
		m = &Module{name: name}
		r.m[name] = m
		r.order = append(r.order, m)
	}
	*m = Module{
		name:    name,
		kind:    kind,
		targets: append([]string(nil), targets...),
	}
	return m
}

// Resolve returns the named module. If no such module exists a new Sink is
// created.
//
func (r *Registry) Resolve(name string) *Module {
	m, ok := r.m[name]
	if !ok {
		m = &Module{name: name, kind: Sink}
		r.m[name] = m
		r.order = append(r.order, m)
	}
	return m
}

// Lookup returns the named module if it exists. Unlike Resolve, it never
// creates new modules.
//
func (r *Registry) Lookup(name string) (*Module, bool) {
	m, ok := r.m[name]
	return m, ok
}

// Modules returns all modules in the order they were first defined or
// resolved.
//
func (r *Registry) Modules() []*Module {
	ms := make([]*Module, len(r.order))
	copy(ms, r.order)
	return ms
}

// Len returns the number of modules in the registry.
//
func (r *Registry) Len() int { return len(r.order) }

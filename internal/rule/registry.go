package rule

import "sort"

// Registry maps rule names to implementations. It keeps registration
// order for listing.
type Registry struct {
	funcs map[string]Func
	names []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds fn under name, replacing any earlier entry with that name.
func (r *Registry) Register(name string, fn Func) {
	if _, ok := r.funcs[name]; !ok {
		r.names = append(r.names, name)
	}
	r.funcs[name] = fn
}

// Lookup returns the implementation registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// SortedNames returns registered names sorted alphabetically.
func (r *Registry) SortedNames() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}

// Len returns the number of registered rules.
func (r *Registry) Len() int { return len(r.names) }

// Clone returns an independent copy of r. Registering into the copy does
// not affect r.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		funcs: make(map[string]Func, len(r.funcs)),
		names: append([]string(nil), r.names...),
	}
	for k, v := range r.funcs {
		c.funcs[k] = v
	}
	return c
}

var builtins = NewRegistry()

// Register adds a built-in rule. It is meant to be called from init().
func Register(name string, fn Func) {
	builtins.Register(name, fn)
}

// Builtins returns a copy of the built-in registry for one run.
func Builtins() *Registry {
	return builtins.Clone()
}

// Reset clears the built-in registry. Used for testing.
func Reset() {
	builtins = NewRegistry()
}

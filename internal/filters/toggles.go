// internal/filters/toggles.go
package filters

import "fmt"

// UnknownFilterError names a filter that is not in the registry.
type UnknownFilterError struct{ Name string }

func (e *UnknownFilterError) Error() string { return fmt.Sprintf("unknown filter %q", e.Name) }

// Toggles maps every registered filter to its enabled state.
// The key set is fixed by the registry it was built from.
type Toggles struct {
	reg Registry
	on  map[string]bool
}

// AllEnabled returns toggles with every filter of reg enabled.
func AllEnabled(reg Registry) Toggles {
	t := Toggles{reg: reg, on: make(map[string]bool, reg.Len())}
	for _, n := range reg.names {
		t.on[n] = true
	}
	return t
}

// Registry returns the registry the toggles were built from.
func (t Toggles) Registry() Registry { return t.reg }

// Enabled reports whether a filter is on. Asking about an unregistered
// filter is a programming error.
func (t Toggles) Enabled(name string) bool {
	v, ok := t.on[name]
	if !ok {
		panic(fmt.Sprintf("filters: %q is not registered", name))
	}
	return v
}

// Disable turns off every named filter. All names are checked first; if any
// is unknown nothing is changed.
func (t Toggles) Disable(names ...string) error {
	for _, n := range names {
		if _, ok := t.on[n]; !ok {
			return &UnknownFilterError{Name: n}
		}
	}
	for _, n := range names {
		t.on[n] = false
	}
	return nil
}

// Clone returns an independent copy.
func (t Toggles) Clone() Toggles {
	c := Toggles{reg: t.reg, on: make(map[string]bool, len(t.on))}
	for k, v := range t.on {
		c.on[k] = v
	}
	return c
}

// Each calls fn for every filter in registry order.
func (t Toggles) Each(fn func(name string, enabled bool)) {
	for _, n := range t.reg.names {
		fn(n, t.on[n])
	}
}

// Disabled lists the disabled filters in registry order.
func (t Toggles) Disabled() []string {
	var out []string
	t.Each(func(n string, on bool) {
		if !on {
			out = append(out, n)
		}
	})
	return out
}

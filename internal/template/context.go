package template

import "sort"

// Context holds the named inputs for one Render call: string values for
// placeholders and boolean flags for predicates. A Context is immutable once
// built; the zero value is an empty Context.
type Context struct {
	values map[string]string
	flags  map[string]bool
}

// NewContext copies values and flags into a new Context. It returns a
// *ConflictError when a name appears in both maps.
func NewContext(values map[string]string, flags map[string]bool) (Context, error) {
	c := Context{
		values: make(map[string]string, len(values)),
		flags:  make(map[string]bool, len(flags)),
	}
	for name, v := range values {
		c.values[name] = v
	}
	for name, f := range flags {
		if _, dup := c.values[name]; dup {
			return Context{}, &ConflictError{Name: name}
		}
		c.flags[name] = f
	}
	return c, nil
}

// WithValue returns a copy of c with name bound to v. Rebinding an existing
// value is allowed; binding a name that is already a flag is a
// *ConflictError.
func (c Context) WithValue(name, v string) (Context, error) {
	if _, dup := c.flags[name]; dup {
		return Context{}, &ConflictError{Name: name}
	}
	out := Context{values: c.Values(), flags: c.Flags()}
	out.values[name] = v
	return out, nil
}

// WithFlag returns a copy of c with name bound to f. Binding a name that is
// already a value is a *ConflictError.
func (c Context) WithFlag(name string, f bool) (Context, error) {
	if _, dup := c.values[name]; dup {
		return Context{}, &ConflictError{Name: name}
	}
	out := Context{values: c.Values(), flags: c.Flags()}
	out.flags[name] = f
	return out, nil
}

// Merge returns a copy of c overlaid with every binding of other. Bindings
// of other win over same-kind bindings of c.
func (c Context) Merge(other Context) (Context, error) {
	out := c
	var err error
	for name, v := range other.values {
		if out, err = out.WithValue(name, v); err != nil {
			return Context{}, err
		}
	}
	for name, f := range other.flags {
		if out, err = out.WithFlag(name, f); err != nil {
			return Context{}, err
		}
	}
	return out, nil
}

// Value returns the string value registered under name.
func (c Context) Value(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Flag returns the boolean flag registered under name.
func (c Context) Flag(name string) (bool, bool) {
	f, ok := c.flags[name]
	return f, ok
}

// Values returns a copy of the string values.
func (c Context) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Flags returns a copy of the boolean flags.
func (c Context) Flags() map[string]bool {
	out := make(map[string]bool, len(c.flags))
	for k, v := range c.flags {
		out[k] = v
	}
	return out
}

// Names returns every value and flag name in sorted order.
func (c Context) Names() []string {
	set := make(map[string]struct{}, len(c.values)+len(c.flags))
	for k := range c.values {
		set[k] = struct{}{}
	}
	for k := range c.flags {
		set[k] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

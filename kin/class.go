package kin

// Class is a runtime class object: a name, the declared bases, and an
// ordered mapping of attribute names to values. Classes are built through a
// Metaclass and keep a reference to it so later attribute assignment routes
// through the same interceptor.
type Class struct {
	Name  string
	Doc   string
	Bases []*Class

	meta  *Metaclass
	names []string
	attrs map[string]Value
}

// Instance pairs a class with its per-object variables.
type Instance struct {
	Class *Class
	Ivars map[string]Value
}

// Meta returns the metaclass the class was constructed through.
func (c *Class) Meta() *Metaclass { return c.meta }

// Own returns an attribute defined directly on the class.
func (c *Class) Own(name string) (Value, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// Lookup resolves an attribute on the class or, failing that, on its bases
// in declaration order, depth first. This is a first-match scan, not a full
// linearization.
func (c *Class) Lookup(name string) (Value, bool) {
	if v, ok := c.attrs[name]; ok {
		return v, true
	}
	for _, b := range c.Bases {
		if v, ok := b.Lookup(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// Names returns the class's own attribute names in definition order.
func (c *Class) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// IsSubclassOf reports whether other appears in the class's ancestry.
// A class is a subclass of itself.
func (c *Class) IsSubclassOf(other *Class) bool {
	if c == other {
		return true
	}
	for _, b := range c.Bases {
		if b.IsSubclassOf(other) {
			return true
		}
	}
	return false
}

// Set assigns an attribute through the metaclass interceptor: override
// markers are validated and unwrapped, everything else passes through
// unmodified. This is also the monkey-patching path after construction.
func (c *Class) Set(name string, v Value) error {
	if c.meta == nil {
		c.install(name, v)
		return nil
	}
	return c.meta.setAttr(c, name, v)
}

func (c *Class) install(name string, v Value) {
	if _, ok := c.attrs[name]; !ok {
		c.names = append(c.names, name)
	}
	c.attrs[name] = v
}

package kin

// Body is an ordered class-body literal. Iteration during construction
// follows insertion order.
type Body struct {
	names []string
	attrs map[string]Value
}

func NewBody() *Body {
	return &Body{attrs: make(map[string]Value)}
}

// Set adds or replaces a body entry; it returns the body for chaining.
// Replacing keeps the original position.
func (b *Body) Set(name string, v Value) *Body {
	if _, ok := b.attrs[name]; !ok {
		b.names = append(b.names, name)
	}
	b.attrs[name] = v
	return b
}

func (b *Body) Get(name string) (Value, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

func (b *Body) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

func (b *Body) Len() int { return len(b.names) }

package kin

import (
	"errors"
	"fmt"
)

// ConstructFunc builds a class from its name, bases, and body. meta is the
// metaclass the construction was requested through, which may be a
// derivation of the one the func belongs to.
type ConstructFunc func(meta *Metaclass, name string, bases []*Class, body *Body) (*Class, error)

// AssignFunc intercepts attribute assignment on a constructed class.
type AssignFunc func(meta *Metaclass, cls *Class, name string, value Value) error

// Metaclass is a class-construction hook. A nil Construct or Assign falls
// back to the raw behavior (install verbatim, no checking), so custom hooks
// only need to supply the parts they change.
type Metaclass struct {
	Name string
	Doc  string

	Construct ConstructFunc
	Assign    AssignFunc
}

// TypeMeta is the raw construction hook, the analog of native class
// construction: body members install verbatim and assignment performs no
// checking.
var TypeMeta = &Metaclass{Name: "Type"}

// Meta is the default metaclass: TypeMeta plus override-marker validation.
var Meta = DeriveMeta(TypeMeta, "Meta", "validates Override markers during class construction")

// New constructs a class through the hook.
func (m *Metaclass) New(name string, bases []*Class, body *Body) (*Class, error) {
	if name == "" {
		return nil, errors.New("kin: class name cannot be empty")
	}
	if body == nil {
		body = NewBody()
	}
	return m.constructFn()(m, name, bases, body)
}

func (m *Metaclass) setAttr(cls *Class, name string, v Value) error {
	return m.assignFn()(m, cls, name, v)
}

func (m *Metaclass) constructFn() ConstructFunc {
	if m.Construct != nil {
		return m.Construct
	}
	return rawConstruct
}

func (m *Metaclass) assignFn() AssignFunc {
	if m.Assign != nil {
		return m.Assign
	}
	return rawAssign
}

func rawConstruct(meta *Metaclass, name string, bases []*Class, body *Body) (*Class, error) {
	for _, b := range bases {
		if b == nil {
			return nil, fmt.Errorf("kin: class %s has a nil base", name)
		}
	}
	cls := &Class{
		Name:  name,
		Bases: append([]*Class(nil), bases...),
		meta:  meta,
		attrs: make(map[string]Value, body.Len()),
	}
	for _, n := range body.names {
		cls.install(n, body.attrs[n])
	}
	return cls, nil
}

func rawAssign(meta *Metaclass, cls *Class, name string, v Value) error {
	cls.install(name, v)
	return nil
}

// DeriveMeta layers override validation on top of an existing metaclass.
// The produced hook re-installs marked members through its own assignment
// interceptor, not the base's, so validation still applies when the result
// is composed again. An empty name defaults to "Override" plus the base
// name.
func DeriveMeta(base *Metaclass, name, doc string) *Metaclass {
	if base == nil {
		base = TypeMeta
	}
	if name == "" {
		name = "Override" + base.Name
	}

	derived := &Metaclass{Name: name, Doc: doc}

	derived.Construct = func(meta *Metaclass, clsName string, bases []*Class, body *Body) (*Class, error) {
		cls, err := base.constructFn()(meta, clsName, bases, body)
		if err != nil {
			return nil, err
		}
		cls.meta = meta

		// Validate every marked member before installing any, so a failing
		// definition never leaves a partially rewritten class behind.
		type pending struct {
			name   string
			member Value
		}
		var installs []pending
		for _, n := range cls.names {
			v := cls.attrs[n]
			if v.Kind() != KindOverride {
				continue
			}
			member, err := checkOverride(cls, n, v.Override())
			if err != nil {
				return nil, err
			}
			installs = append(installs, pending{name: n, member: member})
		}
		for _, p := range installs {
			if err := meta.setAttr(cls, p.name, p.member); err != nil {
				return nil, err
			}
		}
		return cls, nil
	}

	derived.Assign = func(meta *Metaclass, cls *Class, name string, v Value) error {
		if v.Kind() == KindOverride {
			member, err := checkOverride(cls, name, v.Override())
			if err != nil {
				return err
			}
			v = member
		}
		return base.assignFn()(meta, cls, name, v)
	}

	return derived
}

// checkOverride is the override-matching algorithm, shared by every derived
// metaclass. The first base (in declaration order) that exposes the
// attribute supplies the overridden member; its kind must exactly equal the
// new member's kind.
func checkOverride(cls *Class, name string, marker *OverrideDef) (Value, error) {
	if marker == nil {
		return NewNil(), fmt.Errorf("kin: nil override marker for %s.%s", cls.Name, name)
	}

	var overridden Value
	found := false
	for _, b := range cls.Bases {
		if v, ok := b.Lookup(name); ok {
			overridden = v
			found = true
			break
		}
	}
	if !found {
		return NewNil(), missingBaseError(cls, name)
	}

	member := marker.Member()
	if overridden.Kind() != member.Kind() {
		return NewNil(), kindMismatchError(cls, name, overridden.Kind(), member.Kind())
	}
	return member, nil
}

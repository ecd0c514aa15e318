package kin

import "fmt"

// OverrideDef marks a member as intending to override a same-kind member of
// a base class. It is pure data: the construction hook consumes it during
// class building and installs the unwrapped member in its place.
type OverrideDef struct {
	member Value
}

// Override wraps a member in an override marker. The member must be a
// function, method, classmethod, property, or bound callable.
func Override(member Value) (Value, error) {
	if !isMemberKind(member.Kind()) {
		return NewNil(), fmt.Errorf("%w: %s is not callable or a property", ErrInvalidMember, member.Kind())
	}
	return Value{kind: KindOverride, data: &OverrideDef{member: member}}, nil
}

// MustOverride is Override for class-body literals; it panics on an invalid
// member.
func MustOverride(member Value) Value {
	v, err := Override(member)
	if err != nil {
		panic(err)
	}
	return v
}

// Member returns the wrapped member.
func (o *OverrideDef) Member() Value { return o.member }

// Equal reports whether both markers wrap the identical member object.
func (o *OverrideDef) Equal(other *OverrideDef) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.member.kind == other.member.kind && o.member.data == other.member.data
}

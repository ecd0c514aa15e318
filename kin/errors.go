package kin

import (
	"errors"
	"fmt"
)

// ErrAssertionFailure is the generic failure kind OverrideError refines.
// errors.Is(err, ErrAssertionFailure) matches every override failure.
var ErrAssertionFailure = errors.New("assertion failure")

// ErrInvalidMember is wrapped by Override when asked to wrap a value that is
// neither callable nor a property.
var ErrInvalidMember = errors.New("invalid override member")

// OverrideError reports a failed override assertion during class
// construction or attribute assignment. Two cases share the kind: no base
// exposes the attribute, or the kinds differ.
type OverrideError struct {
	Class string
	Attr  string
	msg   string
}

func (e *OverrideError) Error() string { return e.msg }

func (e *OverrideError) Unwrap() error { return ErrAssertionFailure }

func missingBaseError(cls *Class, name string) error {
	return &OverrideError{
		Class: cls.Name,
		Attr:  name,
		msg:   fmt.Sprintf("no base of %s has attr %q", cls.Name, name),
	}
}

func kindMismatchError(cls *Class, name string, overridden, kind ValueKind) error {
	return &OverrideError{
		Class: cls.Name,
		Attr:  name,
		msg:   fmt.Sprintf("%s.%s: attempt to override a %s with a %s", cls.Name, name, overridden, kind),
	}
}

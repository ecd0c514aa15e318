package kin

import (
	"errors"
	"strings"
	"testing"
)

func defineClass(t testing.TB, name string, bases []*Class, body *Body) *Class {
	t.Helper()
	cls, err := Define(name, bases, body)
	if err != nil {
		t.Fatalf("define %s: %v", name, err)
	}
	return cls
}

// scenarioBase builds a class exposing one member of every kind: a method
// "b", a function "c", a classmethod "d", and a property "e".
func scenarioBase(t testing.TB) *Class {
	t.Helper()
	body := NewBody().
		Set("b", NewMethod("b", stubFn)).
		Set("c", NewFunction("c", stubFn)).
		Set("d", NewClassMethod("d", stubFn)).
		Set("e", newStubProperty("e", false))
	return defineClass(t, "A", nil, body)
}

func requireOverrideError(t testing.TB, err error, want string) *OverrideError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected override error containing %q, got nil", want)
	}
	var overrideErr *OverrideError
	if !errors.As(err, &overrideErr) {
		t.Fatalf("expected *OverrideError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrAssertionFailure) {
		t.Fatalf("override error does not unwrap to ErrAssertionFailure")
	}
	if want != "" && !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not contain %q", err.Error(), want)
	}
	return overrideErr
}

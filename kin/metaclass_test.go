package kin

import (
	"testing"
)

func TestUnmarkedBodyPassesThrough(t *testing.T) {
	fn := NewFunction("f", stubFn)
	val := NewInt(7)
	body := NewBody().Set("f", fn).Set("answer", val)

	cls, err := Meta.New("Plain", []*Class{Base}, body)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}

	got, ok := cls.Own("f")
	if !ok || got.Func() != fn.Func() {
		t.Fatalf("function member was modified during construction")
	}
	got, ok = cls.Own("answer")
	if !ok || got.Int() != 7 {
		t.Fatalf("plain value was modified during construction")
	}
	names := cls.Names()
	if len(names) != 2 || names[0] != "f" || names[1] != "answer" {
		t.Fatalf("body order not preserved: %v", names)
	}
}

func TestOverrideSameKindInstallsUnwrapped(t *testing.T) {
	base := scenarioBase(t)

	member := NewFunction("c", stubFn)
	cls := defineClass(t, "B", []*Class{base}, NewBody().Set("c", MustOverride(member)))

	got, ok := cls.Own("c")
	if !ok {
		t.Fatalf("overriding member not installed")
	}
	if got.Kind() != KindFunction {
		t.Fatalf("marker not consumed: installed kind %s", got.Kind())
	}
	if got.Func() != member.Func() {
		t.Fatalf("installed member is not the wrapped one")
	}
}

func TestOverrideKindMismatchFails(t *testing.T) {
	base := scenarioBase(t)

	_, err := Define("B", []*Class{base}, NewBody().
		Set("b", MustOverride(NewFunction("b", stubFn))))
	overrideErr := requireOverrideError(t, err, "attempt to override a method with a function")
	if overrideErr.Class != "B" || overrideErr.Attr != "b" {
		t.Fatalf("error context mismatch: %+v", overrideErr)
	}
}

func TestOverrideMissingBaseAttrFails(t *testing.T) {
	base := scenarioBase(t)

	_, err := Define("B", []*Class{base}, NewBody().
		Set("zz", MustOverride(NewMethod("zz", stubFn))))
	overrideErr := requireOverrideError(t, err, `no base of B has attr "zz"`)
	if overrideErr.Attr != "zz" {
		t.Fatalf("error context mismatch: %+v", overrideErr)
	}
}

func TestClassMethodOverrideRequiresClassMethod(t *testing.T) {
	base := scenarioBase(t)

	_, err := Define("B", []*Class{base}, NewBody().
		Set("d", MustOverride(NewMethod("d", stubFn))))
	requireOverrideError(t, err, "attempt to override a classmethod with a method")

	cls := defineClass(t, "C", []*Class{base}, NewBody().
		Set("d", MustOverride(NewClassMethod("d", stubFn))))
	if got, _ := cls.Own("d"); got.Kind() != KindClassMethod {
		t.Fatalf("classmethod override not installed: %s", got.Kind())
	}
}

func TestPropertyOverride(t *testing.T) {
	base := scenarioBase(t)

	cls := defineClass(t, "B", []*Class{base}, NewBody().
		Set("e", MustOverride(newStubProperty("e", true))))
	if got, _ := cls.Own("e"); got.Kind() != KindProperty {
		t.Fatalf("property override not installed: %s", got.Kind())
	}

	_, err := Define("C", []*Class{base}, NewBody().
		Set("e", MustOverride(NewMethod("e", stubFn))))
	requireOverrideError(t, err, "attempt to override a property with a method")
}

func TestStaticMethodOverridesFunction(t *testing.T) {
	base := scenarioBase(t)

	cls := defineClass(t, "B", []*Class{base}, NewBody().
		Set("c", MustOverride(NewStaticMethod("c", stubFn))))
	if got, _ := cls.Own("c"); got.Kind() != KindFunction {
		t.Fatalf("static method should install as a function, got %s", got.Kind())
	}
}

func TestFirstMatchingBaseWins(t *testing.T) {
	left := defineClass(t, "Left", nil, NewBody().Set("x", NewMethod("x", stubFn)))
	right := defineClass(t, "Right", nil, NewBody().Set("x", NewFunction("x", stubFn)))

	marker := MustOverride(NewFunction("x", stubFn))

	_, err := Define("B", []*Class{left, right}, NewBody().Set("x", marker))
	requireOverrideError(t, err, "attempt to override a method with a function")

	if _, err := Define("C", []*Class{right, left}, NewBody().Set("x", marker)); err != nil {
		t.Fatalf("base order should decide the checked kind: %v", err)
	}
}

func TestBaseSearchIncludesAncestors(t *testing.T) {
	grand := defineClass(t, "Grand", nil, NewBody().Set("x", NewMethod("x", stubFn)))
	parent := defineClass(t, "Parent", []*Class{grand}, NewBody())

	cls := defineClass(t, "Child", []*Class{parent}, NewBody().
		Set("x", MustOverride(NewMethod("x", stubFn))))
	if got, _ := cls.Own("x"); got.Kind() != KindMethod {
		t.Fatalf("override against inherited attribute failed")
	}
}

func TestConstructionIsAtomic(t *testing.T) {
	base := scenarioBase(t)

	var captured *Class
	recording := &Metaclass{
		Name: "Recording",
		Construct: func(meta *Metaclass, name string, bases []*Class, body *Body) (*Class, error) {
			cls, err := rawConstruct(meta, name, bases, body)
			captured = cls
			return cls, err
		},
	}
	checked := DeriveMeta(recording, "", "")
	if checked.Name != "OverrideRecording" {
		t.Fatalf("derived name = %q", checked.Name)
	}

	_, err := checked.New("B", []*Class{base}, NewBody().
		Set("c", MustOverride(NewFunction("c", stubFn))).
		Set("zz", MustOverride(NewMethod("zz", stubFn))))
	requireOverrideError(t, err, `no base of B has attr "zz"`)

	if captured == nil {
		t.Fatalf("base hook never ran")
	}
	// The valid marker earlier in body order must not have been unwrapped.
	if got, _ := captured.Own("c"); got.Kind() != KindOverride {
		t.Fatalf("failed construction partially rewrote the class: c is %s", got.Kind())
	}
}

func TestDeriveMetaComposesWithCustomHooks(t *testing.T) {
	base := scenarioBase(t)

	tagging := &Metaclass{
		Name: "Tagging",
		Construct: func(meta *Metaclass, name string, bases []*Class, body *Body) (*Class, error) {
			cls, err := rawConstruct(meta, name, bases, body)
			if err != nil {
				return nil, err
			}
			cls.install("tag", NewString("stamped"))
			return cls, nil
		},
	}
	derived := DeriveMeta(tagging, "Tagged", "tagging plus override checks")

	cls, err := derived.New("B", []*Class{base}, NewBody().
		Set("c", MustOverride(NewFunction("c", stubFn))))
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	if tag, ok := cls.Own("tag"); !ok || tag.String() != "stamped" {
		t.Fatalf("base hook behavior lost under derivation")
	}
	if got, _ := cls.Own("c"); got.Kind() != KindFunction {
		t.Fatalf("override marker not processed under derivation")
	}

	// Deriving again keeps validating.
	again := DeriveMeta(derived, "", "")
	if again.Name != "OverrideTagged" {
		t.Fatalf("derived name = %q", again.Name)
	}
	_, err = again.New("C", []*Class{base}, NewBody().
		Set("b", MustOverride(NewFunction("b", stubFn))))
	requireOverrideError(t, err, "attempt to override a method with a function")
}

func TestMetaclassRejectsEmptyName(t *testing.T) {
	if _, err := Meta.New("", []*Class{Base}, NewBody()); err == nil {
		t.Fatalf("expected error for empty class name")
	}
}

func TestMetaclassRejectsNilBase(t *testing.T) {
	if _, err := Meta.New("B", []*Class{nil}, NewBody()); err == nil {
		t.Fatalf("expected error for nil base")
	}
}

package kin

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindFunction
	KindMethod
	KindClassMethod
	KindProperty
	KindBound
	KindClass
	KindInstance
	KindOverride
)

type Value struct {
	kind ValueKind
	data any
}

// Fn is the uniform implementation signature for all callable members.
// recv is nil-valued for plain functions.
type Fn func(rt *Runtime, recv Value, args []Value) (Value, error)

// FuncDef backs function, method, and classmethod members. The kind lives on
// the wrapping Value, not here; the same definition could serve any of the
// three.
type FuncDef struct {
	Name string
	Doc  string
	Fn   Fn
}

// PropertyDef backs property members. A nil Get makes the property
// write-only, a nil Set makes it read-only.
type PropertyDef struct {
	Name string
	Doc  string
	Get  Fn
	Set  Fn
	Del  Fn
}

// BoundDef is a callable snapped to a receiver. Bound values are produced by
// attribute access and never declared in a class body.
type BoundDef struct {
	Recv Value
	Fn   *FuncDef
}

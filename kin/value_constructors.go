package kin

func NewNil() Value            { return Value{kind: KindNil} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }

func NewClass(cls *Class) Value        { return Value{kind: KindClass, data: cls} }
func NewInstance(inst *Instance) Value { return Value{kind: KindInstance, data: inst} }

func NewFunction(name string, fn Fn) Value {
	return Value{kind: KindFunction, data: &FuncDef{Name: name, Fn: fn}}
}

// NewStaticMethod is an alias for NewFunction: static methods classify as
// plain functions once installed on a class.
func NewStaticMethod(name string, fn Fn) Value {
	return NewFunction(name, fn)
}

func NewMethod(name string, fn Fn) Value {
	return Value{kind: KindMethod, data: &FuncDef{Name: name, Fn: fn}}
}

func NewClassMethod(name string, fn Fn) Value {
	return Value{kind: KindClassMethod, data: &FuncDef{Name: name, Fn: fn}}
}

func NewProperty(def *PropertyDef) Value {
	if def == nil {
		def = &PropertyDef{}
	}
	return Value{kind: KindProperty, data: def}
}

func newBound(recv Value, fn *FuncDef) Value {
	return Value{kind: KindBound, data: &BoundDef{Recv: recv, Fn: fn}}
}

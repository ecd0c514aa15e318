package kin

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.data.(int64)
	case KindFloat:
		return int64(v.data.(float64))
	default:
		return 0
	}
}

func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.data.(float64)
	case KindInt:
		return float64(v.data.(int64))
	default:
		return 0
	}
}

// Func returns the definition behind a function, method, or classmethod
// value.
func (v Value) Func() *FuncDef {
	switch v.kind {
	case KindFunction, KindMethod, KindClassMethod:
		return v.data.(*FuncDef)
	default:
		return nil
	}
}

func (v Value) Property() *PropertyDef {
	if v.kind != KindProperty {
		return nil
	}
	return v.data.(*PropertyDef)
}

func (v Value) Bound() *BoundDef {
	if v.kind != KindBound {
		return nil
	}
	return v.data.(*BoundDef)
}

func (v Value) Class() *Class {
	if v.kind != KindClass {
		return nil
	}
	return v.data.(*Class)
}

func (v Value) Instance() *Instance {
	if v.kind != KindInstance {
		return nil
	}
	return v.data.(*Instance)
}

func (v Value) Override() *OverrideDef {
	if v.kind != KindOverride {
		return nil
	}
	return v.data.(*OverrideDef)
}

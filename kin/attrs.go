package kin

import "fmt"

// New instantiates a class, running its initialize method when one exists.
func (rt *Runtime) New(cls *Class, args ...Value) (Value, error) {
	if cls == nil {
		return NewNil(), fmt.Errorf("kin: cannot instantiate a nil class")
	}
	inst := &Instance{Class: cls, Ivars: make(map[string]Value)}
	val := NewInstance(inst)
	if init, ok := cls.Lookup("initialize"); ok && init.Kind() == KindMethod {
		if _, err := rt.call(init.Func(), val, args); err != nil {
			return NewNil(), err
		}
	}
	return val, nil
}

// GetAttr resolves an attribute on a class or instance value. Methods bind
// to instances, classmethods bind to the class, property getters run.
func (rt *Runtime) GetAttr(obj Value, name string) (Value, error) {
	switch obj.Kind() {
	case KindClass:
		return rt.classAttr(obj, name)
	case KindInstance:
		return rt.instanceAttr(obj, name)
	default:
		return NewNil(), fmt.Errorf("kin: a %s value has no attributes", obj.Kind())
	}
}

func (rt *Runtime) classAttr(obj Value, name string) (Value, error) {
	cls := obj.Class()
	v, ok := cls.Lookup(name)
	if !ok {
		return NewNil(), fmt.Errorf("kin: unknown class member %s.%s", cls.Name, name)
	}
	if v.Kind() == KindClassMethod {
		return newBound(obj, v.Func()), nil
	}
	return v, nil
}

func (rt *Runtime) instanceAttr(obj Value, name string) (Value, error) {
	inst := obj.Instance()
	if name == "class" {
		return NewClass(inst.Class), nil
	}
	if v, ok := inst.Class.Lookup(name); ok {
		switch v.Kind() {
		case KindMethod:
			return newBound(obj, v.Func()), nil
		case KindClassMethod:
			return newBound(NewClass(inst.Class), v.Func()), nil
		case KindFunction:
			return v, nil
		case KindProperty:
			prop := v.Property()
			if prop.Get == nil {
				return NewNil(), fmt.Errorf("kin: write-only property %s", name)
			}
			return rt.call(&FuncDef{Name: prop.Name, Fn: prop.Get}, obj, nil)
		default:
			// Plain class-level value; instance variables shadow it.
			if iv, ok := inst.Ivars[name]; ok {
				return iv, nil
			}
			return v, nil
		}
	}
	if iv, ok := inst.Ivars[name]; ok {
		return iv, nil
	}
	return NewNil(), fmt.Errorf("kin: unknown member %s", name)
}

// SetAttr assigns an attribute. Class assignment routes through the
// metaclass interceptor (override markers are validated, everything else
// passes through); instance assignment honors property setters and falls
// back to instance variables.
func (rt *Runtime) SetAttr(obj Value, name string, v Value) error {
	switch obj.Kind() {
	case KindClass:
		return obj.Class().Set(name, v)
	case KindInstance:
		inst := obj.Instance()
		if cv, ok := inst.Class.Lookup(name); ok && cv.Kind() == KindProperty {
			prop := cv.Property()
			if prop.Set == nil {
				return fmt.Errorf("kin: read-only property %s", name)
			}
			_, err := rt.call(&FuncDef{Name: prop.Name, Fn: prop.Set}, obj, []Value{v})
			return err
		}
		inst.Ivars[name] = v
		return nil
	default:
		return fmt.Errorf("kin: a %s value has no attributes", obj.Kind())
	}
}

// Call invokes a callable value. Plain functions receive no receiver; bound
// callables carry their own.
func (rt *Runtime) Call(fn Value, recv Value, args []Value) (Value, error) {
	switch fn.Kind() {
	case KindFunction:
		return rt.call(fn.Func(), NewNil(), args)
	case KindMethod, KindClassMethod:
		return rt.call(fn.Func(), recv, args)
	case KindBound:
		b := fn.Bound()
		return rt.call(b.Fn, b.Recv, args)
	default:
		return NewNil(), fmt.Errorf("kin: a %s value is not callable", fn.Kind())
	}
}

// CallMethod resolves an attribute and invokes it in one step.
func (rt *Runtime) CallMethod(obj Value, name string, args []Value) (Value, error) {
	member, err := rt.GetAttr(obj, name)
	if err != nil {
		return NewNil(), err
	}
	return rt.Call(member, obj, args)
}

func (rt *Runtime) call(fn *FuncDef, recv Value, args []Value) (Value, error) {
	if fn == nil || fn.Fn == nil {
		return NewNil(), fmt.Errorf("kin: member has no implementation")
	}
	if rt.config.RecursionLimit > 0 && rt.depth >= rt.config.RecursionLimit {
		return NewNil(), fmt.Errorf("recursion depth exceeded (limit %d)", rt.config.RecursionLimit)
	}
	rt.depth++
	defer func() { rt.depth-- }()
	return fn.Fn(rt, recv, args)
}

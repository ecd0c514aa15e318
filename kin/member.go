package kin

import "fmt"

// isMemberKind reports whether a value can appear in a class body as a
// callable or descriptor member, the forms Override accepts.
func isMemberKind(k ValueKind) bool {
	switch k {
	case KindFunction, KindMethod, KindClassMethod, KindProperty, KindBound:
		return true
	default:
		return false
	}
}

// ParseMemberKind resolves the textual kind names used by manifests and the
// REPL. "staticmethod" resolves to KindFunction.
func ParseMemberKind(s string) (ValueKind, error) {
	switch s {
	case "function", "staticmethod":
		return KindFunction, nil
	case "method":
		return KindMethod, nil
	case "classmethod":
		return KindClassMethod, nil
	case "property":
		return KindProperty, nil
	default:
		return KindNil, fmt.Errorf("kin: unknown member kind %q", s)
	}
}

// NewStubMember builds a member of the given kind with a placeholder
// implementation. Function/method/classmethod stubs return nil; property
// stubs read and write the instance variable of the same name.
func NewStubMember(kind ValueKind, name string) (Value, error) {
	switch kind {
	case KindFunction:
		return NewFunction(name, stubFn), nil
	case KindMethod:
		return NewMethod(name, stubFn), nil
	case KindClassMethod:
		return NewClassMethod(name, stubFn), nil
	case KindProperty:
		return newStubProperty(name, false), nil
	default:
		return NewNil(), fmt.Errorf("kin: cannot stub a %s member", kind)
	}
}

func stubFn(rt *Runtime, recv Value, args []Value) (Value, error) {
	return NewNil(), nil
}

func newStubProperty(name string, readonly bool) Value {
	def := &PropertyDef{
		Name: name,
		Get: func(rt *Runtime, recv Value, args []Value) (Value, error) {
			if inst := recv.Instance(); inst != nil {
				if v, ok := inst.Ivars[name]; ok {
					return v, nil
				}
			}
			return NewNil(), nil
		},
	}
	if !readonly {
		def.Set = func(rt *Runtime, recv Value, args []Value) (Value, error) {
			if inst := recv.Instance(); inst != nil && len(args) == 1 {
				inst.Ivars[name] = args[0]
			}
			return NewNil(), nil
		}
	}
	return NewProperty(def)
}

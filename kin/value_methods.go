package kin

import (
	"fmt"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindClassMethod:
		return "classmethod"
	case KindProperty:
		return "property"
	case KindBound:
		return "bound method"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	case KindOverride:
		return "override"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindNil:
		return ""
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindFloat:
		return fmt.Sprintf("%g", v.data.(float64))
	default:
		return Inspect(v)
	}
}

// Inspect renders a descriptive form of any value, suitable for diagnostics
// and the REPL.
func Inspect(v Value) string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.data.(string))
	case KindFunction, KindMethod, KindClassMethod:
		return fmt.Sprintf("<%s %s>", v.kind, v.Func().Name)
	case KindProperty:
		prop := v.Property()
		modes := propertyModes(prop)
		if modes != "" {
			return fmt.Sprintf("<property %s (%s)>", prop.Name, modes)
		}
		return fmt.Sprintf("<property %s>", prop.Name)
	case KindBound:
		b := v.Bound()
		owner := "?"
		switch b.Recv.Kind() {
		case KindInstance:
			owner = b.Recv.Instance().Class.Name + "#"
		case KindClass:
			owner = b.Recv.Class().Name + "."
		}
		return fmt.Sprintf("<bound method %s%s>", owner, b.Fn.Name)
	case KindClass:
		return fmt.Sprintf("<class %s>", v.Class().Name)
	case KindInstance:
		return fmt.Sprintf("<%s instance>", v.Instance().Class.Name)
	case KindOverride:
		return fmt.Sprintf("<override %s>", Inspect(v.Override().Member()))
	default:
		return v.String()
	}
}

func propertyModes(prop *PropertyDef) string {
	var modes []string
	if prop.Get != nil {
		modes = append(modes, "get")
	}
	if prop.Set != nil {
		modes = append(modes, "set")
	}
	if prop.Del != nil {
		modes = append(modes, "del")
	}
	return strings.Join(modes, "/")
}

package kin

// Base is the zero-behavior root class, pre-wired to the default metaclass.
// Subclassing it is the no-boilerplate way to opt into override checking.
var Base = mustRootClass()

func mustRootClass() *Class {
	cls, err := Meta.New("Base", nil, nil)
	if err != nil {
		panic(err)
	}
	cls.Doc = "root class wired to the default metaclass"
	return cls
}

// Define constructs a class using the metaclass of its first base, so
// subclasses of Base (or of any checked class) inherit override checking
// without naming a metaclass. With no bases, Base is the implicit ancestor.
func Define(name string, bases []*Class, body *Body) (*Class, error) {
	if len(bases) == 0 {
		bases = []*Class{Base}
	}
	meta := Meta
	if bases[0] != nil && bases[0].Meta() != nil {
		meta = bases[0].Meta()
	}
	return meta.New(name, bases, body)
}

// MustDefine is Define, panicking on error.
func MustDefine(name string, bases []*Class, body *Body) *Class {
	cls, err := Define(name, bases, body)
	if err != nil {
		panic(err)
	}
	return cls
}

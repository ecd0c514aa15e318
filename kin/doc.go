// Package kin implements the Kindred class runtime: classes are built at
// runtime from a name, an ordered list of bases, and an ordered body of
// members. Members come in four kinds:
//   - Functions (plain callables, which static methods unwrap to).
//   - Methods (callables bound to an instance on attribute access).
//   - Class methods (callables bound to the class on attribute access).
//   - Properties (computed attributes with getter/setter/deleter).
//
// Wrapping a member with Override asserts, at class-construction time, that
// a member of the same kind exists on a base class. The check walks the
// immediate bases in declaration order and uses the first base that exposes
// the attribute; a missing attribute or a kind mismatch aborts construction
// with an OverrideError. DeriveMeta layers the same validation on top of any
// existing metaclass so the mechanism composes with custom construction
// hooks.
package kin

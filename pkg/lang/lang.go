package lang

import "strings"

// ImplicitPackage is the one package every Java compilation unit imports
// automatically.
const ImplicitPackage = "java.lang"

// WellKnownImplicitTypes lists common java.lang types, mostly as a
// reference for tests and tooling. Membership in java.lang is decided by
// IsImplicitType, not by this map.
var WellKnownImplicitTypes = map[string]bool{
	"java.lang.Boolean":          true,
	"java.lang.Byte":             true,
	"java.lang.Character":        true,
	"java.lang.Class":            true,
	"java.lang.Double":           true,
	"java.lang.Exception":        true,
	"java.lang.Float":            true,
	"java.lang.Integer":          true,
	"java.lang.Iterable":         true,
	"java.lang.Long":             true,
	"java.lang.Math":             true,
	"java.lang.Object":           true,
	"java.lang.Runnable":         true,
	"java.lang.RuntimeException": true,
	"java.lang.Short":            true,
	"java.lang.String":           true,
	"java.lang.StringBuilder":    true,
	"java.lang.System":           true,
	"java.lang.Thread":           true,
	"java.lang.Throwable":        true,
}

// IsImplicitType reports whether fqn names a type the Java compiler
// imports implicitly: a direct member of java.lang. Types in java.lang
// subpackages (java.lang.reflect, java.lang.annotation, ...) still need
// an explicit import, as do static members.
func IsImplicitType(fqn string) bool {
	rest, ok := strings.CutPrefix(fqn, ImplicitPackage+".")
	if !ok || rest == "" {
		return false
	}
	return !strings.Contains(rest, ".")
}

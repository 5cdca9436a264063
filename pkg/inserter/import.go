package inserter

import "fmt"

// ImportKind distinguishes the two Java import declaration forms
type ImportKind int

const (
	ClassImport ImportKind = iota
	StaticImport
)

// ImportSpec represents a single import statement to insert
type ImportSpec struct {
	Kind ImportKind // class import or static member import
	FQN  string     // fully-qualified name, used verbatim
}

// NewClassImport creates a spec for a class import
func NewClassImport(fqn string) ImportSpec {
	return ImportSpec{Kind: ClassImport, FQN: fqn}
}

// NewStaticImport creates a spec for a static member import
func NewStaticImport(fqn string) ImportSpec {
	return ImportSpec{Kind: StaticImport, FQN: fqn}
}

// Line returns the canonical import declaration for the spec. This exact
// text is both what the idempotence scan looks for and what gets inserted.
func (s ImportSpec) Line() string {
	if s.Kind == StaticImport {
		return fmt.Sprintf("import static %s;", s.FQN)
	}
	return fmt.Sprintf("import %s;", s.FQN)
}

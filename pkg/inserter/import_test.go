package inserter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportSpec_Line(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		spec     ImportSpec
		expected string
	}{
		{"class import", NewClassImport("java.util.List"), "import java.util.List;"},
		{"static import", NewStaticImport("org.junit.Assert.assertEquals"), "import static org.junit.Assert.assertEquals;"},
		{"nested class", NewClassImport("java.util.Map.Entry"), "import java.util.Map.Entry;"},
		{"wildcard", NewClassImport("java.util.*"), "import java.util.*;"},
		{"static wildcard", NewStaticImport("java.lang.Math.*"), "import static java.lang.Math.*;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, tt.spec.Line(), "Line() for %q", tt.spec.FQN)
		})
	}
}

func TestImportSpec_Constructors(t *testing.T) {
	req := require.New(t)

	class := NewClassImport("com.example.Foo")
	req.Equal(ClassImport, class.Kind)
	req.Equal("com.example.Foo", class.FQN)

	static := NewStaticImport("com.example.Util.helper")
	req.Equal(StaticImport, static.Kind)
	req.Equal("com.example.Util.helper", static.FQN)
}

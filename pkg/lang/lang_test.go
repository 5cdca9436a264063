package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsImplicitType(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		fqn      string
		expected bool
	}{
		{"java.lang type - String", "java.lang.String", true},
		{"java.lang type - Math", "java.lang.Math", true},
		{"java.lang type - StringBuilder", "java.lang.StringBuilder", true},
		{"java.lang subpackage - reflect", "java.lang.reflect.Field", false},
		{"java.lang subpackage - annotation", "java.lang.annotation.Retention", false},
		{"static member of java.lang type", "java.lang.Math.max", false},
		{"other package - java.util", "java.util.List", false},
		{"other package - third party", "com.google.common.collect.ImmutableList", false},
		{"bare java.lang", "java.lang", false},
		{"java.lang with trailing dot", "java.lang.", false},
		{"prefix lookalike", "java.language.Parser", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsImplicitType(tt.fqn)
			req.Equal(tt.expected, result, "IsImplicitType(%q)", tt.fqn)
		})
	}
}

func TestWellKnownImplicitTypesAgree(t *testing.T) {
	req := require.New(t)
	req.NotEmpty(WellKnownImplicitTypes, "WellKnownImplicitTypes map should not be empty")

	for fqn := range WellKnownImplicitTypes {
		req.True(IsImplicitType(fqn), "Well-known type %q should be classified as implicit", fqn)
	}
}

package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSymbolKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SymbolKind
	}{
		{
			name:     "class element kind",
			input:    "CLASS",
			expected: SymbolKindClass,
		},
		{
			name:     "constructor element kind",
			input:    "CONSTRUCTOR",
			expected: SymbolKindConstructor,
		},
		{
			name:     "getter maps to property",
			input:    "GETTER",
			expected: SymbolKindProperty,
		},
		{
			name:     "setter maps to property",
			input:    "SETTER",
			expected: SymbolKindProperty,
		},
		{
			name:     "mixin maps to class",
			input:    "MIXIN",
			expected: SymbolKindClass,
		},
		{
			name:     "enum constant maps to enum member",
			input:    "ENUM_CONSTANT",
			expected: SymbolKindEnumMember,
		},
		{
			name:     "top level variable maps to variable",
			input:    "TOP_LEVEL_VARIABLE",
			expected: SymbolKindVariable,
		},
		{
			name:     "function element kind",
			input:    "FUNCTION",
			expected: SymbolKindFunction,
		},
		{
			name:     "unknown element kind",
			input:    "UNKNOWN",
			expected: SymbolKindUnknown,
		},
		{
			name:     "unrecognized element kind",
			input:    "SOMETHING_NEW",
			expected: SymbolKindUnknown,
		},
		{
			name:     "empty element kind",
			input:    "",
			expected: SymbolKindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSymbolKind(tt.input), "NewSymbolKind(%q)", tt.input)
		})
	}
}

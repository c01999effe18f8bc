package results

// SymbolKind represents the presentation kind of a symbol as an enum
type SymbolKind string

const (
	SymbolKindFile          SymbolKind = "file"
	SymbolKindModule        SymbolKind = "module"
	SymbolKindNamespace     SymbolKind = "namespace"
	SymbolKindClass         SymbolKind = "class"
	SymbolKindMethod        SymbolKind = "method"
	SymbolKindProperty      SymbolKind = "property"
	SymbolKindField         SymbolKind = "field"
	SymbolKindConstructor   SymbolKind = "constructor"
	SymbolKindEnum          SymbolKind = "enum"
	SymbolKindEnumMember    SymbolKind = "enum_member"
	SymbolKindFunction      SymbolKind = "function"
	SymbolKindVariable      SymbolKind = "variable"
	SymbolKindTypeParameter SymbolKind = "type_parameter"
	SymbolKindUnknown       SymbolKind = "unknown"
)

// Element kinds reported by the Dart analysis server.
// See: https://htmlpreview.github.io/?https://github.com/dart-lang/sdk/blob/main/pkg/analysis_server/doc/api.html#type_ElementKind
var elementKindMap = map[string]SymbolKind{
	"CLASS":               SymbolKindClass,
	"CLASS_TYPE_ALIAS":    SymbolKindClass,
	"COMPILATION_UNIT":    SymbolKindModule,
	"CONSTRUCTOR":         SymbolKindConstructor,
	"ENUM":                SymbolKindEnum,
	"ENUM_CONSTANT":       SymbolKindEnumMember,
	"EXTENSION":           SymbolKindNamespace,
	"EXTENSION_TYPE":      SymbolKindClass,
	"FIELD":               SymbolKindField,
	"FILE":                SymbolKindFile,
	"FUNCTION":            SymbolKindFunction,
	"FUNCTION_TYPE_ALIAS": SymbolKindClass,
	"GETTER":              SymbolKindProperty,
	"LABEL":               SymbolKindUnknown,
	"LIBRARY":             SymbolKindModule,
	"LOCAL_VARIABLE":      SymbolKindVariable,
	"METHOD":              SymbolKindMethod,
	"MIXIN":               SymbolKindClass,
	"PARAMETER":           SymbolKindVariable,
	"PREFIX":              SymbolKindVariable,
	"SETTER":              SymbolKindProperty,
	"TOP_LEVEL_VARIABLE":  SymbolKindVariable,
	"TYPE_ALIAS":          SymbolKindClass,
	"TYPE_PARAMETER":      SymbolKindTypeParameter,
}

// NewSymbolKind returns the SymbolKind for a given analysis server
// element kind
func NewSymbolKind(elementKind string) SymbolKind {
	symbolKind, ok := elementKindMap[elementKind]
	if !ok {
		return SymbolKindUnknown
	}
	return symbolKind
}

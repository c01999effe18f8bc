package types

// Position represents a position in a text document.
// Line and Character are 0-indexed, with Character counted in UTF-16 code
// units, matching what editor hosts expect.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range represents a range in a text document
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Declaration is a raw search hit from the analysis server.
// FileIndex points into the Files list of the enclosing DeclarationSet.
type Declaration struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	ClassName  string `json:"className,omitempty"`
	MixinName  string `json:"mixinName,omitempty"`
	Parameters string `json:"parameters,omitempty"`
	FileIndex  int    `json:"fileIndex"`
	Offset     int    `json:"offset"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	CodeOffset int    `json:"codeOffset"`
	CodeLength int    `json:"codeLength"`
}

// DeclarationSet is the response of a declaration search: the hits in the
// server's own ranking order, plus the deduplicated list of files they
// live in.
type DeclarationSet struct {
	Declarations []Declaration `json:"declarations"`
	Files        []string      `json:"files"`
}

// File returns the absolute path for a declaration in this set, or ""
// when the declaration's file index is out of bounds.
func (ds *DeclarationSet) File(d Declaration) string {
	if d.FileIndex < 0 || d.FileIndex >= len(ds.Files) {
		return ""
	}
	return ds.Files[d.FileIndex]
}

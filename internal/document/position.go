package document

import (
	"github.com/charlenopires/dartls-mcp/pkg/types"
)

// positionIndex converts byte offsets reported by the analysis server into
// display positions. Editor hosts count columns in UTF-16 code units, so
// each line records both its byte span and its UTF-16 length.
type positionIndex struct {
	content string
	lines   []lineInfo
}

type lineInfo struct {
	byteOffset int // byte offset of line start
	byteLen    int // length in bytes, excluding newline
}

func newPositionIndex(content string) *positionIndex {
	idx := &positionIndex{content: content}

	lineStart := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			idx.lines = append(idx.lines, lineInfo{byteOffset: lineStart, byteLen: i - lineStart})
			lineStart = i + 1
		}
	}
	// Last line may not end with a newline
	idx.lines = append(idx.lines, lineInfo{byteOffset: lineStart, byteLen: len(content) - lineStart})

	return idx
}

// positionAt converts a byte offset to a display position, clamping
// out-of-range offsets to the document bounds.
func (idx *positionIndex) positionAt(byteOffset int) types.Position {
	if byteOffset < 0 {
		return types.Position{Line: 0, Character: 0}
	}

	lineNum := len(idx.lines) - 1
	for i, line := range idx.lines {
		if byteOffset <= line.byteOffset+line.byteLen {
			lineNum = i
			break
		}
	}

	line := idx.lines[lineNum]
	charOffset := byteOffset - line.byteOffset
	if charOffset > line.byteLen {
		charOffset = line.byteLen
	}

	lineContent := idx.content[line.byteOffset : line.byteOffset+line.byteLen]
	return types.Position{
		Line:      lineNum,
		Character: byteToUTF16Offset(lineContent, charOffset),
	}
}

// rangeAt converts a byte offset and length to a display range
func (idx *positionIndex) rangeAt(byteOffset, byteLength int) types.Range {
	if byteLength < 0 {
		byteLength = 0
	}
	return types.Range{
		Start: idx.positionAt(byteOffset),
		End:   idx.positionAt(byteOffset + byteLength),
	}
}

// byteToUTF16Offset converts a byte offset within a line to a UTF-16 code
// unit offset
func byteToUTF16Offset(line string, byteOffset int) int {
	count := 0
	for i, r := range line {
		if i >= byteOffset {
			break
		}
		if r >= 0x10000 {
			count += 2 // surrogate pair
		} else {
			count++
		}
	}
	return count
}

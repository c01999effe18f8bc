package results

import (
	"fmt"
	"strconv"
	"strings"
)

const anchorScheme = "dart"

// SymbolAnchor encodes the deferred location metadata of a search result
// so it can cross the tool boundary and come back for resolution
type SymbolAnchor string

// NewSymbolAnchor creates a new SymbolAnchor from a file path and a code
// range given as byte offset and length
func NewSymbolAnchor(file string, offset int, length int) SymbolAnchor {
	return SymbolAnchor(fmt.Sprintf("%s://%s#%d+%d", anchorScheme, file, offset, length))
}

// IsValid checks if the anchor has a valid format
func (a SymbolAnchor) IsValid() bool {
	_, _, _, err := a.Parse()
	return err == nil
}

// String returns the string representation of the anchor
func (a SymbolAnchor) String() string {
	return string(a)
}

// Parse parses a SymbolAnchor into a file path, byte offset, and byte length
func (a SymbolAnchor) Parse() (file string, offset int, length int, err error) {
	anchorStr := string(a)

	if !strings.HasPrefix(anchorStr, anchorScheme+"://") {
		return "", 0, 0, fmt.Errorf("invalid anchor scheme, expected '%s://', got: %s", anchorScheme, anchorStr)
	}

	rest := anchorStr[len(anchorScheme)+3:] // +3 for "://"

	parts := strings.SplitN(rest, "#", 2)
	if len(parts) != 2 {
		return "", 0, 0, fmt.Errorf("invalid anchor format, expected 'dart://FILE#OFFSET+LENGTH', got: %s", anchorStr)
	}

	file = parts[0]
	if file == "" {
		return "", 0, 0, fmt.Errorf("empty file in anchor: %s", anchorStr)
	}

	spanParts := strings.SplitN(parts[1], "+", 2)
	if len(spanParts) != 2 {
		return "", 0, 0, fmt.Errorf("invalid span format, expected 'OFFSET+LENGTH', got: %s", parts[1])
	}

	offset, err = strconv.Atoi(spanParts[0])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid offset '%s': %v", spanParts[0], err)
	}

	length, err = strconv.Atoi(spanParts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid length '%s': %v", spanParts[1], err)
	}

	if offset < 0 {
		return "", 0, 0, fmt.Errorf("offset must not be negative: %d", offset)
	}

	if length < 0 {
		return "", 0, 0, fmt.Errorf("length must not be negative: %d", length)
	}

	return file, offset, length, nil
}

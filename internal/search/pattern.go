package search

import "strings"

// wildcard matches anything between query characters, non-greedily, so
// the analysis server's regex engine stops expanding each gap as soon as
// the next query character is found.
const wildcard = ".*?"

// SynthesizePattern turns a raw user query into a case-insensitive fuzzy
// match pattern: the query's characters must appear in order, with
// arbitrary text allowed between, before, and after them. Characters that
// are not ASCII letters, digits, or hyphens are dropped; a query made
// entirely of such characters degenerates to a match-anything pattern.
func SynthesizePattern(query string) string {
	var fragments []string
	for i := 0; i < len(query); i++ {
		c := query[i]
		if !isPatternByte(c) {
			continue
		}
		fragments = append(fragments, "["+string(upperByte(c))+string(lowerByte(c))+"]")
	}
	return wildcard + strings.Join(fragments, wildcard) + wildcard
}

func isPatternByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return true
	}
	return false
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

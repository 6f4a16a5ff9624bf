// Package textscan classifies decoded text for encoding detection: it flags
// text that is unambiguously corrupted and rates how natural the remaining
// text looks.
package textscan

import (
	"unicode"
	"unicode/utf16"
)

// PerfectScore is the highest naturalness score; text in which every
// character is readable.
const PerfectScore = 100

// IsDefinitelyGarbled reports whether text carries strong structural
// evidence that it was decoded with the wrong encoding. It returns true at
// the first occurrence of a replacement character, a C0 control character or
// DEL, a private-use codepoint, a noncharacter, or a surrogate code point
// (which in decoded text is by definition unpaired). This is a hard filter,
// not a statistical judgment.
func IsDefinitelyGarbled(text string) bool {
	for _, r := range text {
		switch {
		case r == unicode.ReplacementChar:
			return true
		case r < 0x20 || r == 0x7F:
			return true
		case r >= 0xE000 && r <= 0xF8FF:
			return true
		case r >= 0xFDD0 && r <= 0xFDEF:
			return true
		case r == 0xFFFE || r == 0xFFFF:
			return true
		case utf16.IsSurrogate(r):
			return true
		}
	}
	return false
}

// Score rates text from 0 to 100 by the proportion of readable characters:
// letters, digits, whitespace, and punctuation. Symbols, marks, and other
// oddities that survived the garble filter lower the score. Empty text
// scores 0.
func Score(text string) int {
	total, readable := 0, 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsPunct(r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return PerfectScore * readable / total
}

// IsPrintableASCII reports whether buf is non-empty and consists entirely of
// printable ASCII bytes. Such a buffer decodes identically under every
// ASCII-compatible candidate, so detection can return it verbatim instead of
// risking a coincidental wide-encoding reading of the same bytes.
func IsPrintableASCII(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	for _, b := range buf {
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

package encdetect

import "unsafe"

// DecodeAutoAt is DecodeAuto for raw memory: it reads at most maxLen bytes
// starting at ptr, bounds them at the furthest embedded terminator across
// the candidate code-unit widths, and detects the encoding of the bounded
// slice. The caller guarantees that maxLen bytes are readable at ptr; the
// memory is only read, never retained past the call.
//
// The bound is the furthest terminator so that no candidate's content is cut
// short: a width-1 scan over UTF-16 text would stop at the first high zero
// byte, halfway through the first character. Per-candidate truncation inside
// DecodeAuto then applies each candidate's own width to the bounded slice.
func DecodeAutoAt(ptr unsafe.Pointer, maxLen int, candidates ...Candidate) string {
	if ptr == nil || maxLen <= 0 {
		return ""
	}
	buf := unsafe.Slice((*byte)(ptr), maxLen)
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	return DecodeAuto(buf[:terminatorBound(buf, candidates)], candidates...)
}

// terminatorBound returns the byte length of buf up to the furthest
// width-aware terminator among the candidates' widths, or the full length
// when no candidate sees a terminator.
func terminatorBound(buf []byte, candidates []Candidate) int {
	bound := 0
	for _, c := range candidates {
		if n := len(truncateAtTerminator(buf, c.Width)); n > bound {
			bound = n
		}
	}
	return bound
}

package encdetect

import "bytes"

// preprocess prepares a buffer for one candidate: it truncates at the first
// embedded terminator scaled to that candidate's own code-unit width, then
// strips the candidate's preamble from the truncated slice. Truncation is
// computed per candidate so a width-2 candidate is never cut mid-unit at a
// byte position that only looks like a terminator to a width-1 candidate.
func preprocess(buf []byte, c Candidate) []byte {
	return stripPreamble(truncateAtTerminator(buf, c.Width), c.Preamble)
}

// truncateAtTerminator cuts buf (exclusive) at the first all-zero code unit
// aligned to the width's scan step. Without a terminator the full buffer is
// returned.
func truncateAtTerminator(buf []byte, w Width) []byte {
	step := w.UnitBytes()
	if step == 1 {
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			return buf[:i]
		}
		return buf
	}
	for i := 0; i+step <= len(buf); i += step {
		if isZeroUnit(buf[i : i+step]) {
			return buf[:i]
		}
	}
	return buf
}

func isZeroUnit(unit []byte) bool {
	for _, b := range unit {
		if b != 0 {
			return false
		}
	}
	return true
}

func stripPreamble(buf, preamble []byte) []byte {
	if len(preamble) > 0 && bytes.HasPrefix(buf, preamble) {
		return buf[len(preamble):]
	}
	return buf
}

// Package words extracts the alphabetic runs that hover and completion
// operate on.
package words

// minPrefixLen is the shortest trailing run worth completing.
const minPrefixLen = 3

// isLetter reports whether b is an ASCII letter. Byte scans stay correct
// in UTF-8 text because continuation bytes never fall in these ranges.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// clamp bounds offset to a valid index into line.
func clamp(line string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(line) {
		return len(line)
	}
	return offset
}

// WordAt returns the maximal ASCII-letter run containing offset, and the
// byte offset of its first character. An empty word means the cursor
// touches no letter.
func WordAt(line string, offset int) (string, int) {
	offset = clamp(line, offset)

	start := offset
	for start > 0 && isLetter(line[start-1]) {
		start--
	}

	end := offset
	for end < len(line) && isLetter(line[end]) {
		end++
	}

	return line[start:end], start
}

// PrefixBefore returns the maximal ASCII-letter run ending at offset and
// the byte offset of its first character. Runs shorter than three letters
// report ok == false.
func PrefixBefore(line string, offset int) (prefix string, start int, ok bool) {
	offset = clamp(line, offset)

	start = offset
	for start > 0 && isLetter(line[start-1]) {
		start--
	}

	if offset-start < minPrefixLen {
		return "", 0, false
	}
	return line[start:offset], start, true
}

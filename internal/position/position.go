// Package position converts between the UTF-16 column offsets used on the
// wire and byte offsets into the server's UTF-8 line representation.
package position

// utf16Len returns the number of UTF-16 code units r occupies. Runes
// outside the basic multilingual plane take a surrogate pair.
func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// ToByteOffset converts a UTF-16 column offset into a byte offset within
// line. Offsets past the end of the line clamp to its length; an offset
// landing inside a multi-unit character snaps to that character's start.
func ToByteOffset(line string, utf16Offset int) int {
	if utf16Offset <= 0 {
		return 0
	}

	units := 0
	for i, r := range line {
		n := utf16Len(r)
		if units+n > utf16Offset {
			return i
		}
		units += n
	}
	return len(line)
}

// ToUTF16Offset converts a byte offset within line into a UTF-16 column
// offset. Offsets past the end of the line clamp to its UTF-16 length; an
// offset landing inside a character counts that whole character.
func ToUTF16Offset(line string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}

	units := 0
	for i, r := range line {
		if i >= byteOffset {
			return units
		}
		units += utf16Len(r)
	}
	return units
}

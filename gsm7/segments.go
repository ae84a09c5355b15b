package gsm7

// segmentSizes lists the maximum character count that fits in n+1
// concatenated segments, per encoding. A message longer than the last
// row cannot be sent at all.
var segmentSizes = [...]struct{ gsm7, ucs2 int }{
	{160, 70},
	{306, 134},
	{459, 201},
	{612, 268},
	{765, 335},
}

// Segments returns the number of concatenated SMS segments needed for
// a message of count characters under enc. ok is false when no
// supported segment count accommodates the message.
//
// The count is the rune count of the original message text, not the
// encoded byte length; extension-alphabet runes still count as one.
func Segments(count int, enc Encoding) (n int, ok bool) {
	for i, size := range segmentSizes {
		limit := size.gsm7
		if enc == UCS2 {
			limit = size.ucs2
		}
		if limit >= count {
			return i + 1, true
		}
	}
	return 0, false
}

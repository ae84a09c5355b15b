// Package gsm7 implements character classification and segment
// accounting for the GSM 03.38 SMS alphabet.
package gsm7

import (
	"errors"
	"fmt"
)

// Encoding identifies which SMS payload encoding a message will be
// transmitted in.
type Encoding byte

const (
	// GSM7 is the 7-bit GSM 03.38 default alphabet.
	GSM7 Encoding = iota
	// UCS2 is the 16-bit fallback used when a message contains runes
	// outside the GSM 03.38 tables.
	UCS2
)

func (e Encoding) String() string {
	if e == UCS2 {
		return "UCS-2"
	}
	return "GSM-7"
}

// Esc introduces a character from the extension table.
const Esc byte = 0x1B

// defaultTable maps runes of the GSM 03.38 default alphabet to their
// code points (0x00-0x7F). 0x1B is reserved for the escape code and has
// no printable mapping.
var defaultTable = map[rune]byte{
	'@':  0x00,
	'£':  0x01,
	'$':  0x02,
	'¥':  0x03,
	'è':  0x04,
	'é':  0x05,
	'ù':  0x06,
	'ì':  0x07,
	'ò':  0x08,
	'Ç':  0x09,
	'\n': 0x0A,
	'Ø':  0x0B,
	'ø':  0x0C,
	'\r': 0x0D,
	'Å':  0x0E,
	'å':  0x0F,
	'Δ':  0x10,
	'_':  0x11,
	'Φ':  0x12,
	'Γ':  0x13,
	'Λ':  0x14,
	'Ω':  0x15,
	'Π':  0x16,
	'Ψ':  0x17,
	'Σ':  0x18,
	'Θ':  0x19,
	'Ξ':  0x1A,
	// 0x1B is the escape code
	'Æ':  0x1C,
	'æ':  0x1D,
	'ß':  0x1E,
	'É':  0x1F,
	' ':  0x20,
	'!':  0x21,
	'"':  0x22,
	'#':  0x23,
	'¤':  0x24,
	'%':  0x25,
	'&':  0x26,
	'\'': 0x27,
	'(':  0x28,
	')':  0x29,
	'*':  0x2A,
	'+':  0x2B,
	',':  0x2C,
	'-':  0x2D,
	'.':  0x2E,
	'/':  0x2F,
	'0':  0x30,
	'1':  0x31,
	'2':  0x32,
	'3':  0x33,
	'4':  0x34,
	'5':  0x35,
	'6':  0x36,
	'7':  0x37,
	'8':  0x38,
	'9':  0x39,
	':':  0x3A,
	';':  0x3B,
	'<':  0x3C,
	'=':  0x3D,
	'>':  0x3E,
	'?':  0x3F,
	'¡':  0x40,
	'A':  0x41,
	'B':  0x42,
	'C':  0x43,
	'D':  0x44,
	'E':  0x45,
	'F':  0x46,
	'G':  0x47,
	'H':  0x48,
	'I':  0x49,
	'J':  0x4A,
	'K':  0x4B,
	'L':  0x4C,
	'M':  0x4D,
	'N':  0x4E,
	'O':  0x4F,
	'P':  0x50,
	'Q':  0x51,
	'R':  0x52,
	'S':  0x53,
	'T':  0x54,
	'U':  0x55,
	'V':  0x56,
	'W':  0x57,
	'X':  0x58,
	'Y':  0x59,
	'Z':  0x5A,
	'Ä':  0x5B,
	'Ö':  0x5C,
	'Ñ':  0x5D,
	'Ü':  0x5E,
	'§':  0x5F,
	'¿':  0x60,
	'a':  0x61,
	'b':  0x62,
	'c':  0x63,
	'd':  0x64,
	'e':  0x65,
	'f':  0x66,
	'g':  0x67,
	'h':  0x68,
	'i':  0x69,
	'j':  0x6A,
	'k':  0x6B,
	'l':  0x6C,
	'm':  0x6D,
	'n':  0x6E,
	'o':  0x6F,
	'p':  0x70,
	'q':  0x71,
	'r':  0x72,
	's':  0x73,
	't':  0x74,
	'u':  0x75,
	'v':  0x76,
	'w':  0x77,
	'x':  0x78,
	'y':  0x79,
	'z':  0x7A,
	'ä':  0x7B,
	'ö':  0x7C,
	'ñ':  0x7D,
	'ü':  0x7E,
	'à':  0x7F,
}

// extensionTable maps runes reachable only through the escape code.
// Each one costs two code units on the wire.
var extensionTable = map[rune]byte{
	'\f': 0x0A,
	'^':  0x14,
	'{':  0x28,
	'}':  0x29,
	'\\': 0x2F,
	'[':  0x3C,
	'~':  0x3D,
	']':  0x3E,
	'|':  0x40,
	'€':  0x65,
}

// reverse mappings for decoding, built once at startup
var (
	defaultReverse   = make(map[byte]rune, len(defaultTable))
	extensionReverse = make(map[byte]rune, len(extensionTable))
)

func init() {
	for r, b := range defaultTable {
		defaultReverse[b] = r
	}
	for r, b := range extensionTable {
		extensionReverse[b] = r
	}
}

// Encode converts text into its unpacked GSM 03.38 representation.
// Runes in the default alphabet become one code unit. Runes in the
// extension alphabet become an escape pair and are also reported as
// omitted, since they double the cost and are candidates for
// replacement. Runes in neither table contribute nothing to the output
// and are reported as omitted. The omitted list is de-duplicated in
// first-seen order.
func Encode(text string) (encoded []byte, omitted []rune) {
	seen := make(map[rune]bool)
	for _, r := range text {
		if code, ok := defaultTable[r]; ok {
			encoded = append(encoded, code)
			continue
		}
		if code, ok := extensionTable[r]; ok {
			encoded = append(encoded, Esc, code)
		}
		if !seen[r] {
			seen[r] = true
			omitted = append(omitted, r)
		}
	}
	return encoded, omitted
}

// IsBasic reports whether every rune of text is in the default
// alphabet, i.e. encodable without escapes or omissions.
func IsBasic(text string) bool {
	for _, r := range text {
		if _, ok := defaultTable[r]; !ok {
			return false
		}
	}
	return true
}

// Decode converts an unpacked GSM 03.38 byte sequence back into a
// string. An escape byte (0x1B) indicates that the following byte is
// from the extension table.
func Decode(input []byte) (string, error) {
	var result []rune
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b == Esc {
			if i+1 >= len(input) {
				return "", errors.New("invalid GSM7 encoding: escape at end of input")
			}
			i++
			r, ok := extensionReverse[input[i]]
			if !ok {
				return "", fmt.Errorf("invalid GSM7 extension code: 0x%X", input[i])
			}
			result = append(result, r)
			continue
		}
		r, ok := defaultReverse[b]
		if !ok {
			return "", fmt.Errorf("invalid GSM7 byte: 0x%X", b)
		}
		result = append(result, r)
	}
	return string(result), nil
}

package ulid

const (
	// EncodedSize is the length of the canonical text form.
	EncodedSize = 26

	timeEncodedSize = 10
	randEncodedSize = 16
)

// alphabet is the 32-symbol encoding set: digits then letters with I,
// L, O and U removed to avoid visual ambiguity. Symbols are in
// ascending order, so same-length encodings compare like the bytes
// they encode.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// dec maps ASCII bytes to their 5-bit alphabet index, 0xFF for bytes
// outside the alphabet. Lowercase letters map like their uppercase
// forms.
var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		dec[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			dec[c+'a'-'A'] = byte(i)
		}
	}
}

// encodeTime writes the 10-character form of the 6-byte time part.
// 48 bits split into ten 5-bit groups with two leading zero bits, so
// the first character carries only three bits and never exceeds '7'.
func encodeTime(dst, src []byte) {
	dst[0] = alphabet[(src[0]&0xE0)>>5]
	dst[1] = alphabet[src[0]&0x1F]
	dst[2] = alphabet[(src[1]&0xF8)>>3]
	dst[3] = alphabet[(src[1]&0x07)<<2|(src[2]&0xC0)>>6]
	dst[4] = alphabet[(src[2]&0x3E)>>1]
	dst[5] = alphabet[(src[2]&0x01)<<4|(src[3]&0xF0)>>4]
	dst[6] = alphabet[(src[3]&0x0F)<<1|(src[4]&0x80)>>7]
	dst[7] = alphabet[(src[4]&0x7C)>>2]
	dst[8] = alphabet[(src[4]&0x03)<<3|(src[5]&0xE0)>>5]
	dst[9] = alphabet[src[5]&0x1F]
}

// encodeRandom writes the 16-character form of the 10-byte random
// part: 80 bits, exactly sixteen 5-bit groups.
func encodeRandom(dst, src []byte) {
	dst[0] = alphabet[(src[0]&0xF8)>>3]
	dst[1] = alphabet[(src[0]&0x07)<<2|(src[1]&0xC0)>>6]
	dst[2] = alphabet[(src[1]&0x3E)>>1]
	dst[3] = alphabet[(src[1]&0x01)<<4|(src[2]&0xF0)>>4]
	dst[4] = alphabet[(src[2]&0x0F)<<1|(src[3]&0x80)>>7]
	dst[5] = alphabet[(src[3]&0x7C)>>2]
	dst[6] = alphabet[(src[3]&0x03)<<3|(src[4]&0xE0)>>5]
	dst[7] = alphabet[src[4]&0x1F]
	dst[8] = alphabet[(src[5]&0xF8)>>3]
	dst[9] = alphabet[(src[5]&0x07)<<2|(src[6]&0xC0)>>6]
	dst[10] = alphabet[(src[6]&0x3E)>>1]
	dst[11] = alphabet[(src[6]&0x01)<<4|(src[7]&0xF0)>>4]
	dst[12] = alphabet[(src[7]&0x0F)<<1|(src[8]&0x80)>>7]
	dst[13] = alphabet[(src[8]&0x7C)>>2]
	dst[14] = alphabet[(src[8]&0x03)<<3|(src[9]&0xE0)>>5]
	dst[15] = alphabet[src[9]&0x1F]
}

// decodeTime unpacks a 10-character block into the 6-byte time part.
func decodeTime(dst []byte, src string) error {
	if len(src) != timeEncodedSize {
		return ErrInvalidLength
	}
	for i := 0; i < len(src); i++ {
		if dec[src[i]] == 0xFF {
			return ErrInvalidCharacter
		}
	}
	// Ten 5-bit groups hold 50 bits; a first character above '7' does
	// not fit the 48-bit time part and would alias a smaller value.
	if dec[src[0]] > 0x07 {
		return ErrOverflow
	}
	dst[0] = dec[src[0]]<<5 | dec[src[1]]
	dst[1] = dec[src[2]]<<3 | dec[src[3]]>>2
	dst[2] = dec[src[3]]<<6 | dec[src[4]]<<1 | dec[src[5]]>>4
	dst[3] = dec[src[5]]<<4 | dec[src[6]]>>1
	dst[4] = dec[src[6]]<<7 | dec[src[7]]<<2 | dec[src[8]]>>3
	dst[5] = dec[src[8]]<<5 | dec[src[9]]
	return nil
}

// decodeRandom unpacks a 16-character block into the 10-byte random
// part.
func decodeRandom(dst []byte, src string) error {
	if len(src) != randEncodedSize {
		return ErrInvalidLength
	}
	for i := 0; i < len(src); i++ {
		if dec[src[i]] == 0xFF {
			return ErrInvalidCharacter
		}
	}
	dst[0] = dec[src[0]]<<3 | dec[src[1]]>>2
	dst[1] = dec[src[1]]<<6 | dec[src[2]]<<1 | dec[src[3]]>>4
	dst[2] = dec[src[3]]<<4 | dec[src[4]]>>1
	dst[3] = dec[src[4]]<<7 | dec[src[5]]<<2 | dec[src[6]]>>3
	dst[4] = dec[src[6]]<<5 | dec[src[7]]
	dst[5] = dec[src[8]]<<3 | dec[src[9]]>>2
	dst[6] = dec[src[9]]<<6 | dec[src[10]]<<1 | dec[src[11]]>>4
	dst[7] = dec[src[11]]<<4 | dec[src[12]]>>1
	dst[8] = dec[src[12]]<<7 | dec[src[13]]<<2 | dec[src[14]]>>3
	dst[9] = dec[src[14]]<<5 | dec[src[15]]
	return nil
}

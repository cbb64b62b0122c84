package ulid

import (
	"bytes"
	"errors"
	"testing"
)

func TestCodecBlockSizes(t *testing.T) {
	var six [timeSize]byte
	if err := decodeTime(six[:], "012345678"); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("decodeTime(9 chars) = %v, want ErrInvalidLength", err)
	}
	if err := decodeTime(six[:], "01234567890"); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("decodeTime(11 chars) = %v, want ErrInvalidLength", err)
	}

	var ten [randSize]byte
	if err := decodeRandom(ten[:], "012345678901234"); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("decodeRandom(15 chars) = %v, want ErrInvalidLength", err)
	}
	if err := decodeRandom(ten[:], "01234567890123456"); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("decodeRandom(17 chars) = %v, want ErrInvalidLength", err)
	}
}

func TestCodecReferenceBlocks(t *testing.T) {
	// 1469922850259 ms, big-endian.
	timePart := []byte{0x01, 0x56, 0x3E, 0x3A, 0xB5, 0xD3}

	var text [timeEncodedSize]byte
	encodeTime(text[:], timePart)
	if got, want := string(text[:]), refText[:timeEncodedSize]; got != want {
		t.Fatalf("encodeTime = %q, want %q", got, want)
	}

	var back [timeSize]byte
	if err := decodeTime(back[:], string(text[:])); err != nil {
		t.Fatalf("decodeTime: %v", err)
	}
	if !bytes.Equal(back[:], timePart) {
		t.Fatalf("decodeTime = %x, want %x", back, timePart)
	}

	var randText [randEncodedSize]byte
	encodeRandom(randText[:], refRandom)
	if got, want := string(randText[:]), refText[timeEncodedSize:]; got != want {
		t.Fatalf("encodeRandom = %q, want %q", got, want)
	}

	var randBack [randSize]byte
	if err := decodeRandom(randBack[:], string(randText[:])); err != nil {
		t.Fatalf("decodeRandom: %v", err)
	}
	if !bytes.Equal(randBack[:], refRandom) {
		t.Fatalf("decodeRandom = %x, want %x", randBack, refRandom)
	}
}

func TestDecodeTable(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if dec[c] != byte(i) {
			t.Fatalf("dec[%q] = %d, want %d", c, dec[c], i)
		}
		if c >= 'A' && c <= 'Z' {
			if lower := c + 'a' - 'A'; dec[lower] != byte(i) {
				t.Fatalf("dec[%q] = %d, want %d", lower, dec[lower], i)
			}
		}
	}
	for _, c := range []byte{'I', 'L', 'O', 'U', 'i', 'l', 'o', 'u', '!', ' ', 0x00, 0xFF} {
		if dec[c] != 0xFF {
			t.Fatalf("dec[%q] = %d, want 0xFF", c, dec[c])
		}
	}
}

package base32

import "strings"

const (
	// MaxDecodedLength caps decoded output at the largest secret size the
	// secret store accepts.
	MaxDecodedLength = 1024

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	groupSize = 4 // symbols per space-separated group
)

// Options controls the text form produced by Encode. The three flags are
// independent; zero value means compact lowercase output without padding.
type Options struct {
	Spacing   bool // insert a space after every 4 output symbols
	Padding   bool // append '=' up to a multiple of 8 symbols
	Uppercase bool // emit A-Z instead of a-z
}

// DefaultOptions is the interchange form produced for display and export:
// uppercase, unpadded, grouped in blocks of four.
var DefaultOptions = Options{Spacing: true, Padding: false, Uppercase: true}

// Decode converts Base32 text to raw bytes. Whitespace is ignored anywhere,
// letters are accepted in either case, and padding is optional: a trailing
// partial group of five or more leftover bits yields one final byte with the
// missing low bits read as zero. The first '=' starts the padding region;
// after it only further '=' and whitespace may appear.
func Decode(s string) ([]byte, error) {
	var (
		out     []byte
		buf     uint16
		bits    uint
		padding bool
	)

	for _, r := range s {
		if isSpace(r) {
			continue
		}
		if r == '=' {
			padding = true
			continue
		}
		if padding {
			return nil, ErrMalformedPadding
		}

		v, ok := symbolValue(r)
		if !ok {
			return nil, ErrInvalidCharacter
		}

		buf = buf<<5 | uint16(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			if len(out) == MaxDecodedLength {
				return nil, ErrSecretTooLong
			}
			out = append(out, byte(buf>>bits))
		}
	}

	// A leftover of 5+ bits means a whole extra symbol was supplied; emit it
	// left-justified rather than rejecting the input.
	if bits >= 5 {
		if len(out) == MaxDecodedLength {
			return nil, ErrSecretTooLong
		}
		out = append(out, byte(buf<<(8-bits)))
	}

	return out, nil
}

// Encode converts raw bytes to Base32 text according to opts. Empty input
// yields an empty string. Spacing groups are counted over all emitted
// symbols, padding included.
func Encode(data []byte, opts Options) string {
	if len(data) == 0 {
		return ""
	}

	var (
		sb      strings.Builder
		buf     uint16
		bits    uint
		symbols int
	)

	emit := func(c byte) {
		if opts.Spacing && symbols > 0 && symbols%groupSize == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c)
		symbols++
	}

	for _, b := range data {
		buf = buf<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			emit(symbolChar(byte(buf>>bits)&0x1f, opts.Uppercase))
		}
	}
	if bits > 0 {
		emit(symbolChar(byte(buf<<(5-bits))&0x1f, opts.Uppercase))
	}

	if opts.Padding {
		for symbols%8 != 0 {
			emit('=')
		}
	}

	return sb.String()
}

func symbolValue(r rune) (byte, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return byte(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return byte(r - 'a'), true
	case r >= '2' && r <= '7':
		return byte(r-'2') + 26, true
	}
	return 0, false
}

func symbolChar(v byte, uppercase bool) byte {
	c := alphabet[v]
	if !uppercase && c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

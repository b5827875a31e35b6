package base32_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/base32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "rfc4648 vector foobar",
			input: "MZXW6YTBOI======",
			want:  []byte("foobar"),
		},
		{
			name:  "unpadded",
			input: "MZXW6YTBOI",
			want:  []byte("foobar"),
		},
		{
			name:  "lowercase",
			input: "mzxw6ytboi",
			want:  []byte("foobar"),
		},
		{
			name:  "mixed case with spacing",
			input: "mzxw 6YTB oi",
			want:  []byte("foobar"),
		},
		{
			name:  "interior whitespace of all kinds",
			input: "MZ\tXW\n6Y  TB\r\nOI",
			want:  []byte("foobar"),
		},
		{
			name:  "whitespace between padding",
			input: "MZXW6YTBOI== ====",
			want:  []byte("foobar"),
		},
		{
			name:    "symbol after padding",
			input:   "MZXW6YTBOI=A",
			wantErr: base32.ErrMalformedPadding,
		},
		{
			name:    "digit after padding",
			input:   "MZXW=2",
			wantErr: base32.ErrMalformedPadding,
		},
		{
			name:    "invalid character one",
			input:   "MZXW1",
			wantErr: base32.ErrInvalidCharacter,
		},
		{
			name:    "invalid character punctuation",
			input:   "MZXW-6YTB",
			wantErr: base32.ErrInvalidCharacter,
		},
		{
			name:  "partial trailing symbol emits final byte",
			input: "MZX",
			want:  []byte{0x66, 0x6e},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := base32.Decode(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLengthLimit(t *testing.T) {
	t.Parallel()

	max := base32.Encode(make([]byte, base32.MaxDecodedLength), base32.Options{Uppercase: true})
	got, err := base32.Decode(max)
	require.NoError(t, err)
	assert.Len(t, got, base32.MaxDecodedLength)

	over := base32.Encode(make([]byte, base32.MaxDecodedLength+1), base32.Options{Uppercase: true})
	_, err = base32.Decode(over)
	require.ErrorIs(t, err, base32.ErrSecretTooLong)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		opts  base32.Options
		want  string
	}{
		{
			name:  "empty input yields empty string",
			input: nil,
			opts:  base32.DefaultOptions,
			want:  "",
		},
		{
			name:  "canonical padded uppercase",
			input: []byte("foobar"),
			opts:  base32.Options{Padding: true, Uppercase: true},
			want:  "MZXW6YTBOI======",
		},
		{
			name:  "default interchange form",
			input: []byte("foobar"),
			opts:  base32.DefaultOptions,
			want:  "MZXW 6YTB OI",
		},
		{
			name:  "lowercase compact",
			input: []byte("foobar"),
			opts:  base32.Options{},
			want:  "mzxw6ytboi",
		},
		{
			name:  "spacing counts padding symbols",
			input: []byte("foobar"),
			opts:  base32.Options{Spacing: true, Padding: true, Uppercase: true},
			want:  "MZXW 6YTB OI== ====",
		},
		{
			name:  "single byte padded",
			input: []byte{0x00},
			opts:  base32.Options{Padding: true, Uppercase: true},
			want:  "AA======",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base32.Encode(tt.input, tt.opts))
		})
	}
}

// Canonical form must survive a round trip for every representable secret
// length, padding runs included.
func TestRoundTripAllLengths(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	canonical := base32.Options{Padding: true, Uppercase: true}

	for n := 0; n <= base32.MaxDecodedLength; n++ {
		data := make([]byte, n)
		_, _ = rng.Read(data)

		text := base32.Encode(data, canonical)
		got, err := base32.Decode(text)
		require.NoError(t, err, "length %d", n)
		if n == 0 {
			assert.Empty(t, got)
			continue
		}
		require.Equal(t, data, got, "length %d", n)
		assert.Zero(t, len(text)%8, "length %d not padded to full quantum", n)
	}
}

func TestRoundTripSpacedLowercase(t *testing.T) {
	t.Parallel()

	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89}
	text := base32.Encode(data, base32.Options{Spacing: true})
	assert.Equal(t, strings.ToLower(text), text)

	got, err := base32.Decode(text)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

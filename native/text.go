package native

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	gbTerminator  = 0x50
	gbaTerminator = 0xFF
)

type charTable struct {
	encode map[rune]byte
	decode map[byte]rune
}

func newCharTable(ranges map[byte]string) charTable {
	t := charTable{encode: map[rune]byte{}, decode: map[byte]rune{}}
	for start, chars := range ranges {
		b := start
		for _, r := range chars {
			t.encode[r] = b
			t.decode[b] = r
			b++
		}
	}
	return t
}

var gbChars = newCharTable(map[byte]string{
	0x7F: " ",
	0x80: "ABCDEFGHIJKLMNOPQRSTUVWXYZ():;[]",
	0xA0: "abcdefghijklmnopqrstuvwxyz",
	0xE0: "'",
	0xE3: "-",
	0xE6: "?!.",
	0xEF: "♂",
	0xF3: "/,♀0123456789",
})

var gbaChars = newCharTable(map[byte]string{
	0x00: " ",
	0x1B: "é",
	0xA1: "0123456789!?.-",
	0xB0: "…“”‘'♂♀",
	0xB8: ",",
	0xBA: "/ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
})

func (t charTable) encodeText(s string, size int, terminator byte, needTerminator bool) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrBadText)
	}
	limit := size
	if needTerminator {
		limit--
	}
	if n := utf8.RuneCountInString(s); n > limit {
		return nil, fmt.Errorf("%w: %q is longer than %d characters", ErrBadText, s, limit)
	}
	out := bytes.Repeat([]byte{terminator}, size)
	i := 0
	for _, r := range s {
		b, ok := t.encode[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q cannot be stored", ErrBadText, r)
		}
		out[i] = b
		i++
	}
	return out, nil
}

func (t charTable) decodeText(data []byte, terminator byte) (string, error) {
	var sb bytes.Buffer
	for _, b := range data {
		if b == terminator {
			break
		}
		r, ok := t.decode[b]
		if !ok {
			return "", fmt.Errorf("%w: byte 0x%02X", ErrBadText, b)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// EncodeGBText encodes a Game Boy string into size bytes, terminator
// included.
func EncodeGBText(s string, size int) ([]byte, error) {
	return gbChars.encodeText(s, size, gbTerminator, true)
}

func DecodeGBText(data []byte) (string, error) {
	return gbChars.decodeText(data, gbTerminator)
}

// EncodeGBAText encodes a Game Boy Advance string. A string filling the
// whole field is stored without a terminator.
func EncodeGBAText(s string, size int) ([]byte, error) {
	return gbaChars.encodeText(s, size, gbaTerminator, false)
}

func DecodeGBAText(data []byte) (string, error) {
	return gbaChars.decodeText(data, gbaTerminator)
}

var (
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

func encodeUTF16(enc encoding.Encoding, s string, size int) ([]byte, error) {
	if strings.ContainsRune(s, 0) {
		return nil, fmt.Errorf("%w: embedded NUL", ErrBadText)
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadText, err)
	}
	// room for a 16-bit terminator
	if len(encoded) > size-2 {
		return nil, fmt.Errorf("%w: %q is longer than %d code units", ErrBadText, s, size/2-1)
	}
	out := make([]byte, size)
	copy(out, encoded)
	return out, nil
}

func decodeUTF16(enc encoding.Encoding, data []byte) (string, error) {
	end := len(data) &^ 1
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			end = i
			break
		}
	}
	decoded, err := enc.NewDecoder().Bytes(data[:end])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadText, err)
	}
	if !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("%w: unpaired surrogate", ErrBadText)
	}
	return string(decoded), nil
}

// EncodeUTF16BE is the Gamecube text encoding.
func EncodeUTF16BE(s string, size int) ([]byte, error) { return encodeUTF16(utf16BE, s, size) }
func DecodeUTF16BE(data []byte) (string, error)        { return decodeUTF16(utf16BE, data) }

// EncodeUTF16LE is the Nintendo DS text encoding.
func EncodeUTF16LE(s string, size int) ([]byte, error) { return encodeUTF16(utf16LE, s, size) }
func DecodeUTF16LE(data []byte) (string, error)        { return decodeUTF16(utf16LE, data) }

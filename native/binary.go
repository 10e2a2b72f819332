package native

import (
	"encoding/binary"
	"fmt"
)

func decode[T any](data []byte, order binary.ByteOrder) (*T, error) {
	v := new(T)
	if want := binary.Size(v); len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrBadLength, want, len(data))
	}
	if _, err := binary.Decode(data, order, v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLength, err)
	}
	return v, nil
}

// encode only fails for non fixed-size values, which none of the structs here are.
func encode(v any, order binary.ByteOrder) []byte {
	out, err := binary.Append(nil, order, v)
	if err != nil {
		panic(err)
	}
	return out
}

// checksum16 sums the little-endian 16-bit words of data.
func checksum16(data []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum += binary.LittleEndian.Uint16(data[i:])
	}
	return sum
}

// Uint24 reads the three byte big-endian experience field of the Game Boy
// structs.
func Uint24(b [3]uint8) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func PutUint24(v uint32) [3]uint8 {
	return [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

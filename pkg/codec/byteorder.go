package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidByteOrder is returned for unrecognized byte order names.
var ErrInvalidByteOrder = errors.New("invalid byte order")

// ByteOrder selects how multi-byte values are assembled.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// ParseByteOrder parses "little"/"le", "big"/"be" or "native",
// case-insensitively. "native" resolves to the host byte order.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	case "native":
		return NativeByteOrder(), nil
	default:
		return LittleEndian, fmt.Errorf("%w: %q (use 'little' or 'big')", ErrInvalidByteOrder, s)
	}
}

// NativeByteOrder returns the byte order of the host.
func NativeByteOrder() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return LittleEndian
	}
	return BigEndian
}

// Binary returns the encoding/binary implementation of the order.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

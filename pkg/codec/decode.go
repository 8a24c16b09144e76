package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInsufficientBytes is returned when a slice is shorter than the type.
var ErrInsufficientBytes = errors.New("insufficient bytes")

// Decode interprets the first t.Size() bytes of b under order and formats
// the value as text.
func Decode(t DataType, b []byte, order ByteOrder) (string, error) {
	size := t.Size()
	if size == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	if len(b) < size {
		return "", fmt.Errorf("%w: need %d, got %d", ErrInsufficientBytes, size, len(b))
	}

	bo := order.Binary()
	switch t {
	case U8:
		return strconv.FormatUint(uint64(b[0]), 10), nil
	case I8:
		return strconv.FormatInt(int64(int8(b[0])), 10), nil
	case U16:
		return strconv.FormatUint(uint64(bo.Uint16(b)), 10), nil
	case I16:
		return strconv.FormatInt(int64(int16(bo.Uint16(b))), 10), nil
	case U32:
		return strconv.FormatUint(uint64(bo.Uint32(b)), 10), nil
	case I32:
		return strconv.FormatInt(int64(int32(bo.Uint32(b))), 10), nil
	case U64:
		return strconv.FormatUint(bo.Uint64(b), 10), nil
	case I64:
		return strconv.FormatInt(int64(bo.Uint64(b)), 10), nil
	case F32:
		return strconv.FormatFloat(float64(math.Float32frombits(bo.Uint32(b))), 'f', 6, 32), nil
	case F64:
		return strconv.FormatFloat(math.Float64frombits(bo.Uint64(b)), 'f', 6, 64), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownType, t)
}

// Encode returns the low t.Size() bytes of bits laid out under order.
// Callers pass integers as their two's complement bit pattern and floats
// through math.Float32bits or math.Float64bits.
func Encode(t DataType, bits uint64, order ByteOrder) []byte {
	b := make([]byte, t.Size())
	bo := order.Binary()
	switch len(b) {
	case 1:
		b[0] = uint8(bits)
	case 2:
		bo.PutUint16(b, uint16(bits))
	case 4:
		bo.PutUint32(b, uint32(bits))
	case 8:
		bo.PutUint64(b, bits)
	}
	return b
}

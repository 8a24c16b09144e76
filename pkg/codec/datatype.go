package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned by ParseDataType for unsupported type names.
var ErrUnknownType = errors.New("unknown type")

// DataType is a fixed-width scalar type.
type DataType int

const (
	U8 DataType = iota
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
)

type typeInfo struct {
	name    string
	size    int
	signed  bool
	float   bool
	aliases []string
}

var typeTable = [...]typeInfo{
	U8:  {name: "u8", size: 1},
	U16: {name: "u16", size: 2},
	U32: {name: "u32", size: 4},
	U64: {name: "u64", size: 8},
	I8:  {name: "i8", size: 1, signed: true},
	I16: {name: "i16", size: 2, signed: true},
	I32: {name: "i32", size: 4, signed: true},
	I64: {name: "i64", size: 8, signed: true},
	F32: {name: "f32", size: 4, signed: true, float: true, aliases: []string{"float"}},
	F64: {name: "f64", size: 8, signed: true, float: true, aliases: []string{"double"}},
}

// lookup maps every accepted lowercase spelling to its type.
var lookup = func() map[string]DataType {
	m := make(map[string]DataType)
	for i, info := range typeTable {
		m[info.name] = DataType(i)
		for _, alias := range info.aliases {
			m[alias] = DataType(i)
		}
	}
	return m
}()

// DataTypes returns all supported types in declaration order.
func DataTypes() []DataType {
	types := make([]DataType, len(typeTable))
	for i := range typeTable {
		types[i] = DataType(i)
	}
	return types
}

// ParseDataType parses a type name, case-insensitively.
// "float" and "double" are accepted as aliases of f32 and f64.
func ParseDataType(s string) (DataType, error) {
	if dt, ok := lookup[strings.ToLower(s)]; ok {
		return dt, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownType, s)
}

func (t DataType) info() typeInfo {
	if t < 0 || int(t) >= len(typeTable) {
		return typeInfo{name: fmt.Sprintf("type(%d)", int(t))}
	}
	return typeTable[t]
}

// Size returns the width of the type in bytes.
func (t DataType) Size() int { return t.info().size }

// Name returns the canonical lowercase type name.
func (t DataType) Name() string { return t.info().name }

// Signed reports whether the type can hold negative values.
func (t DataType) Signed() bool { return t.info().signed }

// IsFloat reports whether the type is an IEEE-754 float.
func (t DataType) IsFloat() bool { return t.info().float }

// Aliases returns the alternative spellings accepted by ParseDataType.
func (t DataType) Aliases() []string { return t.info().aliases }

func (t DataType) String() string { return t.Name() }

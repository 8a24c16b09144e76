package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	tests := []struct {
		input    string
		expected DataType
	}{
		{"u8", U8},
		{"U8", U8},
		{"u16", U16},
		{"u32", U32},
		{"U64", U64},
		{"i8", I8},
		{"i16", I16},
		{"I32", I32},
		{"i64", I64},
		{"f32", F32},
		{"float", F32},
		{"FLOAT", F32},
		{"f64", F64},
		{"double", F64},
		{"Double", F64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dt, err := ParseDataType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dt)
		})
	}
}

func TestParseDataType_Unknown(t *testing.T) {
	for _, input := range []string{"invalid", "u24", "", "int"} {
		_, err := ParseDataType(input)
		assert.ErrorIs(t, err, ErrUnknownType, "input %q", input)
	}
}

func TestDataType_Properties(t *testing.T) {
	tests := []struct {
		dt     DataType
		name   string
		size   int
		signed bool
		float  bool
	}{
		{U8, "u8", 1, false, false},
		{U16, "u16", 2, false, false},
		{U32, "u32", 4, false, false},
		{U64, "u64", 8, false, false},
		{I8, "i8", 1, true, false},
		{I16, "i16", 2, true, false},
		{I32, "i32", 4, true, false},
		{I64, "i64", 8, true, false},
		{F32, "f32", 4, true, true},
		{F64, "f64", 8, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.dt.Name())
			assert.Equal(t, tt.name, tt.dt.String())
			assert.Equal(t, tt.size, tt.dt.Size())
			assert.Equal(t, tt.signed, tt.dt.Signed())
			assert.Equal(t, tt.float, tt.dt.IsFloat())
		})
	}
}

func TestDataTypes_ListsEveryType(t *testing.T) {
	types := DataTypes()
	require.Len(t, types, 10)
	assert.Equal(t, U8, types[0])
	assert.Equal(t, F64, types[len(types)-1])
	assert.Equal(t, []string{"float"}, F32.Aliases())
	assert.Equal(t, []string{"double"}, F64.Aliases())
	assert.Empty(t, U16.Aliases())
}

func TestParseByteOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected ByteOrder
	}{
		{"little", LittleEndian},
		{"Little", LittleEndian},
		{"le", LittleEndian},
		{"LE", LittleEndian},
		{"big", BigEndian},
		{"BIG", BigEndian},
		{"be", BigEndian},
		{"BE", BigEndian},
		{"native", NativeByteOrder()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			order, err := ParseByteOrder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, order)
		})
	}
}

func TestParseByteOrder_Invalid(t *testing.T) {
	_, err := ParseByteOrder("middle")
	assert.ErrorIs(t, err, ErrInvalidByteOrder)
	assert.Contains(t, err.Error(), "middle")
}

func TestByteOrder_String(t *testing.T) {
	assert.Equal(t, "little", LittleEndian.String())
	assert.Equal(t, "big", BigEndian.String())
}

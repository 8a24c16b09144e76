// Package codec decodes fixed-width scalars from byte slices.
//
// Supported types are 8/16/32/64-bit signed and unsigned integers and
// 32/64-bit IEEE-754 floats, read under an explicit byte order. Decoded
// values are formatted as plain base-10 text; floats always carry exactly
// six digits after the decimal point.
package codec

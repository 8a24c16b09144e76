package typespec

import (
	"errors"
	"fmt"

	"github.com/praetorian-inc/anno/pkg/codec"
)

// Parse errors. They are reported before any byte of the buffer is read.
var (
	ErrInvalidToken   = errors.New("invalid type specification")
	ErrEmptyFieldName = errors.New("field name cannot be empty")
	ErrInvalidSkip    = errors.New("invalid skip syntax")
	ErrSkipZero       = errors.New("skip size cannot be 0")
	ErrSkipAlignment  = errors.New("skip size must be a multiple of 8 bits")
)

// ErrInsufficientData matches every walk error caused by a short buffer.
var ErrInsufficientData = errors.New("not enough data")

// ErrInternal wraps codec failures the walk should have ruled out.
var ErrInternal = errors.New("internal decode failure")

// InsufficientDataError reports a scalar that ran past the end of the buffer.
type InsufficientDataError struct {
	Name      string // display name of the field
	Type      codec.DataType
	Offset    int
	Expected  int
	Available int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough data: %s (%s) at offset %d needs %d bytes, but only %d available",
		e.Name, e.Type, e.Offset, e.Expected, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientData) hold.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// SkipRangeError reports a skip directive that ran past the end of the buffer.
type SkipRangeError struct {
	Bytes  int // requested skip size
	Offset int
	Len    int // buffer length
}

func (e *SkipRangeError) Error() string {
	return fmt.Sprintf("not enough data: cannot skip %d bytes at offset %d, buffer length is %d",
		e.Bytes, e.Offset, e.Len)
}

// Is makes errors.Is(err, ErrInsufficientData) hold.
func (e *SkipRangeError) Is(target error) bool {
	return target == ErrInsufficientData
}

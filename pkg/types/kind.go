package types

import "fmt"

// Kind selects how an annotation is rendered.
type Kind int

const (
	// KindNormal marks a successfully decoded field.
	KindNormal Kind = iota
	// KindError marks a field whose decode ran out of data.
	KindError
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindNormal, KindError:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown annotation kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*k = KindNormal
	case "error":
		*k = KindError
	default:
		return fmt.Errorf("unknown annotation kind %q", string(text))
	}
	return nil
}

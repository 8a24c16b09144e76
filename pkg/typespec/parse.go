// Package typespec compiles type-specification tokens into annotations.
//
// A token is either a scalar ("u16", "u16:apid") or a skip directive (".32",
// a bit count that must be a positive multiple of 8). Tokens are consumed in
// order against a cursor that starts at offset 0 of the buffer.
package typespec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/praetorian-inc/anno/pkg/codec"
)

var (
	skipPattern = regexp.MustCompile(`^\.[0-9]+$`)
	typePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Step is one parsed token: a scalar decode or a skip.
type Step struct {
	Type  codec.DataType
	Field string // explicit field name, empty when absent
	Skip  int    // bytes to skip; non-zero marks a skip step
}

// IsSkip reports whether the step only advances the cursor.
func (s Step) IsSkip() bool {
	return s.Skip > 0
}

// Size returns the number of bytes the step consumes.
func (s Step) Size() int {
	if s.IsSkip() {
		return s.Skip
	}
	return s.Type.Size()
}

// DisplayName is the field name when given, else the type name.
func (s Step) DisplayName() string {
	if s.Field != "" {
		return s.Field
	}
	return s.Type.Name()
}

// String returns the canonical token for the step.
func (s Step) String() string {
	switch {
	case s.IsSkip():
		return "." + strconv.Itoa(s.Skip*8)
	case s.Field != "":
		return s.Type.Name() + ":" + s.Field
	default:
		return s.Type.Name()
	}
}

// ParseToken parses a single token.
func ParseToken(token string) (Step, error) {
	if strings.HasPrefix(token, ".") {
		return parseSkip(token)
	}

	typePart, field, hasField := strings.Cut(token, ":")
	if hasField && field == "" {
		return Step{}, fmt.Errorf("%w in %q", ErrEmptyFieldName, token)
	}
	if !typePattern.MatchString(typePart) {
		return Step{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	dt, err := codec.ParseDataType(typePart)
	if err != nil {
		return Step{}, fmt.Errorf("token %q: %w", token, err)
	}
	return Step{Type: dt, Field: field}, nil
}

func parseSkip(token string) (Step, error) {
	if !skipPattern.MatchString(token) {
		return Step{}, fmt.Errorf("%w: %q (expected .<bits>, e.g. .32)", ErrInvalidSkip, token)
	}

	bits, err := strconv.Atoi(token[1:])
	if err != nil {
		return Step{}, fmt.Errorf("%w: %q: %v", ErrInvalidSkip, token, err)
	}
	if bits == 0 {
		return Step{}, fmt.Errorf("%w: %q", ErrSkipZero, token)
	}
	if bits%8 != 0 {
		return Step{}, fmt.Errorf("%w: %q is %d bits", ErrSkipAlignment, token, bits)
	}
	return Step{Skip: bits / 8}, nil
}

// Plan is an ordered list of parsed steps.
type Plan struct {
	Steps []Step
}

// Parse parses every token. Nothing is returned unless all tokens are valid.
func Parse(tokens []string) (Plan, error) {
	steps := make([]Step, 0, len(tokens))
	for _, token := range tokens {
		step, err := ParseToken(token)
		if err != nil {
			return Plan{}, err
		}
		steps = append(steps, step)
	}
	return Plan{Steps: steps}, nil
}

// Size returns the total number of bytes the plan consumes.
func (p Plan) Size() int {
	total := 0
	for _, s := range p.Steps {
		total += s.Size()
	}
	return total
}

// String joins the canonical tokens with spaces.
func (p Plan) String() string {
	tokens := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		tokens[i] = s.String()
	}
	return strings.Join(tokens, " ")
}

// Package style maps dump roles to terminal colors.
package style

import (
	"github.com/fatih/color"

	"github.com/praetorian-inc/anno/pkg/types"
)

// Palette styles each role of a dump. Every method is a pure text transform.
type Palette interface {
	Address(s string) string
	AnnotatedByte(s string) string
	ErrorByte(s string) string
	NormalLabel(l types.Label) string
	ErrorLabel(l types.Label) string
}

// Styles holds color formatters for the dump.
type Styles struct {
	address    *color.Color
	annotated  *color.Color
	errorByte  *color.Color
	labelName  *color.Color
	labelValue *color.Color
	errorLabel *color.Color
}

// New creates the dump palette. Each formatter is forced on or off, so the
// result does not depend on the package-global color.NoColor.
func New(enabled bool) *Styles {
	s := &Styles{
		address:    color.New(color.FgGreen),
		annotated:  color.New(color.FgBlue),
		errorByte:  color.New(color.FgRed),
		labelName:  color.New(color.FgMagenta),
		labelValue: color.New(color.FgBlue),
		errorLabel: color.New(color.Bold, color.FgRed),
	}

	for _, c := range []*color.Color{s.address, s.annotated, s.errorByte, s.labelName, s.labelValue, s.errorLabel} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *Styles) Address(text string) string       { return s.address.Sprint(text) }
func (s *Styles) AnnotatedByte(text string) string { return s.annotated.Sprint(text) }
func (s *Styles) ErrorByte(text string) string     { return s.errorByte.Sprint(text) }

// NormalLabel colors the name and the value separately; the ": " between
// them stays uncolored.
func (s *Styles) NormalLabel(l types.Label) string {
	switch {
	case l.Name == "":
		return s.labelValue.Sprint(l.Value)
	case l.Value == "":
		return s.labelName.Sprint(l.Name)
	default:
		return s.labelName.Sprint(l.Name) + ": " + s.labelValue.Sprint(l.Value)
	}
}

func (s *Styles) ErrorLabel(l types.Label) string {
	return s.errorLabel.Sprint(l.String())
}

// Plain returns a palette that leaves every string untouched.
func Plain() Palette {
	return plain{}
}

type plain struct{}

func (plain) Address(s string) string          { return s }
func (plain) AnnotatedByte(s string) string    { return s }
func (plain) ErrorByte(s string) string        { return s }
func (plain) NormalLabel(l types.Label) string { return l.String() }
func (plain) ErrorLabel(l types.Label) string  { return l.String() }

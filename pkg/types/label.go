package types

// Label is the text shown next to an annotation's underline.
//
// Name is the display name (field name or type name) and Value is the decoded
// text or error detail. Plain caller-supplied labels only set Value and are
// never split.
type Label struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// TextLabel wraps free-form text in a Label.
func TextLabel(text string) Label {
	return Label{Value: text}
}

// String renders the label as "name: value".
func (l Label) String() string {
	switch {
	case l.Name == "":
		return l.Value
	case l.Value == "":
		return l.Name
	default:
		return l.Name + ": " + l.Value
	}
}

// IsZero reports whether the label has no text at all.
func (l Label) IsZero() bool {
	return l.Name == "" && l.Value == ""
}

package refs

// Ref is a single reference extracted from text: the matched text with its
// surrounding blanks stripped, and the fully resolved URL it points at.
//
// Refs are immutable once created. Equality is structural.
type Ref struct {
	text string
	url  string
}

// NewRef creates a reference from its display text and resolved URL.
func NewRef(text, url string) Ref {
	return Ref{text: text, url: url}
}

// Text returns the matched reference text.
func (r Ref) Text() string {
	return r.text
}

// URL returns the resolved absolute URL.
func (r Ref) URL() string {
	return r.url
}

// IsZero returns true if this is a zero Ref.
func (r Ref) IsZero() bool {
	return r.text == "" && r.url == ""
}

// Equal returns true if two Refs have the same text and URL.
func (r Ref) Equal(other Ref) bool {
	return r == other
}

// String returns the "text: url" representation.
func (r Ref) String() string {
	if r.IsZero() {
		return ""
	}
	return r.text + ": " + r.url
}

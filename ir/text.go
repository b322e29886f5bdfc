package ir

// TextKind classifies a normalized text signal by shape, not content.
type TextKind string

const (
	TextNone      TextKind = "none"
	TextShort     TextKind = "short"
	TextSentence  TextKind = "sentence"
	TextParagraph TextKind = "paragraph"
	TextMixed     TextKind = "mixed"
)

// TextSignal is a privacy-preserving summary of text content: a length
// class, an optional character count, and an optional stability digest of
// the normalized text. A TextNone signal carries neither.
type TextSignal struct {
	Kind TextKind `json:"kind"`
	Len  *int     `json:"len,omitempty"`
	Hash *string  `json:"hash,omitempty"`
}

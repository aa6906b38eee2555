package unicase

import (
	"fmt"
	"unicode/utf8"
)

// Wrappers serialize as their original, unfolded text and deserialize
// from text back into a wrapper. Both types satisfy
// encoding.TextMarshaler and encoding.TextUnmarshaler, which also covers
// JSON values and JSON object keys.

// MarshalText returns the original text of u.
func (u UniCase) MarshalText() ([]byte, error) {
	return []byte(u.s), nil
}

// UnmarshalText sets u from text, re-running the construction-time ASCII
// scan. Invalid UTF-8 is rejected.
func (u *UniCase) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return fmt.Errorf("unicase: invalid UTF-8: %q", text)
	}
	*u = New(string(text))
	return nil
}

// MarshalText returns the original text of a.
func (a Ascii) MarshalText() ([]byte, error) {
	return []byte(a.s), nil
}

// UnmarshalText sets a from text. Content outside the ASCII range is
// rejected.
func (a *Ascii) UnmarshalText(text []byte) error {
	v, err := NewAscii(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Package flex decodes the loosely typed JSON the upstream BarberSmart API
// returns. Every type here accepts any JSON value without failing the
// surrounding decode: values of the wrong shape decode to their zero value.
package flex

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var null = []byte("null")

// ======================================================
// ID
// ======================================================

// ID is an identifier that may arrive as a JSON number or a JSON string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	*id = ID(scalarText(b))
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Key returns the canonical comparison key: integral values compare by
// number ("7", "07", 7 and 7.0 share a key), anything else by trimmed,
// lower-cased text.
func (id ID) Key() string {
	return CanonicalKey(string(id))
}

func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func CanonicalKey(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strings.ToLower(s)
}

// ======================================================
// Text
// ======================================================

// Text is a display string. Numbers keep their literal text; objects,
// arrays and booleans decode to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = Text(scalarText(b))
	return nil
}

func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

// Or returns the trimmed text, or def when it is blank.
func (t Text) Or(def string) string {
	if s := t.String(); s != "" {
		return s
	}
	return def
}

// ======================================================
// Number
// ======================================================

// Number is a decimal amount that may arrive as a JSON number or as numeric
// text. Valid is false when the value was absent or not numeric.
type Number struct {
	Value decimal.Decimal
	Valid bool
}

func NewNumber(v decimal.Decimal) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}

	s := scalarText(b)
	if s == "" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	n.Value = d
	n.Valid = true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return null, nil
	}
	return []byte(n.Value.String()), nil
}

// Positive reports whether the number is present and greater than zero.
func (n Number) Positive() bool {
	return n.Valid && n.Value.IsPositive()
}

// ======================================================
// Strings
// ======================================================

// Strings is an ordered list of labels. Present is false when the field was
// absent or null; Malformed is set when the field held something other
// than an array.
type Strings struct {
	Items     []string
	Present   bool
	Malformed bool
}

func NewStrings(items ...string) Strings {
	return Strings{Items: items, Present: true}
}

func (s *Strings) UnmarshalJSON(b []byte) error {
	*s = Strings{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, null) {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		s.Malformed = true
		return nil
	}

	s.Present = true
	s.Items = make([]string, 0, len(raw))
	for _, el := range raw {
		if isComposite(el) {
			s.Malformed = true
			continue
		}
		if v := scalarText(el); v != "" {
			s.Items = append(s.Items, v)
		}
	}
	return nil
}

func (s Strings) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return null, nil
	}
	if s.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Items)
}

func (s Strings) Len() int {
	return len(s.Items)
}

// ======================================================
// helpers
// ======================================================

// scalarText returns the text of a JSON string or number, "" otherwise.
func scalarText(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ""
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

func isComposite(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && (b[0] == '{' || b[0] == '[')
}

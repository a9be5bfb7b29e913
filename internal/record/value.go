package record

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	KindMissing Kind = iota
	KindText
	KindNumber
	KindBool
	KindNull
	KindStructured
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// Value is a single record field. Only the member matching Kind is meaningful.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
	// raw is the compact JSON of a structured value.
	raw string
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Missing returns the value of a key the record does not have.
func Missing() Value { return Value{kind: KindMissing} }

// Structured returns an object or array value from its JSON text.
// The JSON is compacted so equal values render identically.
func Structured(rawJSON string) Value {
	return Value{kind: KindStructured, raw: gjson.Get(rawJSON, "@ugly").Raw}
}

// FromResult converts a gjson lookup result into a Value.
func FromResult(r gjson.Result) Value {
	if !r.Exists() {
		return Missing()
	}
	switch r.Type {
	case gjson.String:
		return Text(r.Str)
	case gjson.Number:
		return Number(r.Num)
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Null:
		return Null()
	case gjson.JSON:
		return Structured(r.Raw)
	default:
		return Missing()
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the text of a KindText value.
func (v Value) Str() string { return v.text }

// Num returns the number of a KindNumber value.
func (v Value) Num() float64 { return v.num }

// Truth returns the boolean of a KindBool value.
func (v Value) Truth() bool { return v.b }

// Raw returns the compact JSON of a KindStructured value.
func (v Value) Raw() string { return v.raw }

// Render converts a Value into the text shown in a table cell.
//
// Text, numbers and booleans render in their literal form. Every other shape
// renders as its JSON serialization, except a missing key, which renders as an
// empty cell.
func Render(v Value) string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	case KindStructured:
		return v.raw
	case KindMissing:
		return ""
	default:
		return ""
	}
}

// formatNumber prints f the way a JavaScript number displays: negative zero
// as 0, and exponent notation outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		// Drop the two-digit exponent padding: 1e-07 becomes 1e-7.
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String implements fmt.Stringer using Render.
func (v Value) String() string { return Render(v) }

package record

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Parsing errors. Compare with errors.Is.
var (
	// ErrInvalidJSON indicates input that is not well-formed JSON.
	ErrInvalidJSON = constError("invalid JSON")

	// ErrNotArray indicates a record collection that is not a JSON array.
	ErrNotArray = constError("record collection must be a JSON array")

	// ErrNotObject indicates a record that is not a JSON object.
	ErrNotObject = constError("record must be a JSON object")
)

// Record is one immutable JSON object displayed as a table row.
type Record struct {
	raw string
}

// Parse parses a single JSON object into a Record.
func Parse(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Record{}, fmt.Errorf("%w: got %s", ErrNotObject, describe(res))
	}
	return Record{raw: res.Raw}, nil
}

// ParseArray parses a JSON array of objects into records, keeping their order.
func ParseArray(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, describe(res))
	}

	var (
		records []Record
		err     error
	)
	index := 0
	res.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			err = fmt.Errorf("element %d: %w: got %s", index, ErrNotObject, describe(item))
			return false
		}
		records = append(records, Record{raw: item.Raw})
		index++
		return true
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(jsonText string) Record {
	r, err := Parse([]byte(jsonText))
	if err != nil {
		panic(err)
	}
	return r
}

// Field looks up key in the record. Missing keys yield a KindMissing value.
func (r Record) Field(key string) Value {
	if r.raw == "" {
		return Missing()
	}
	return FromResult(gjson.Get(r.raw, key))
}

// Keys returns the record's top-level keys in document order.
func (r Record) Keys() []string {
	var keys []string
	gjson.Parse(r.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Raw returns the record's JSON text.
func (r Record) Raw() string {
	return r.raw
}

// describe names the JSON type of res for error messages.
func describe(res gjson.Result) string {
	switch {
	case res.IsArray():
		return "array"
	case res.IsObject():
		return "object"
	default:
		return res.Type.String()
	}
}

package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/record"
)

const sample = `{
  "id": 7,
  "first_name": "Ilka",
  "score": 12.5,
  "active": true,
  "manager": null,
  "tags": ["a", "b"],
  "address": {"city": "Ghent", "zip": "9000"}
}`

func TestRender(t *testing.T) {
	r := record.MustParse(sample)

	tests := []struct {
		name     string
		key      string
		wantKind record.Kind
		want     string
	}{
		{name: "text verbatim", key: "first_name", wantKind: record.KindText, want: "Ilka"},
		{name: "integer literal", key: "id", wantKind: record.KindNumber, want: "7"},
		{name: "fractional literal", key: "score", wantKind: record.KindNumber, want: "12.5"},
		{name: "boolean literal", key: "active", wantKind: record.KindBool, want: "true"},
		{name: "null serialized", key: "manager", wantKind: record.KindNull, want: "null"},
		{name: "array serialized", key: "tags", wantKind: record.KindStructured, want: `["a","b"]`},
		{
			name:     "object serialized",
			key:      "address",
			wantKind: record.KindStructured,
			want:     `{"city":"Ghent","zip":"9000"}`,
		},
		{name: "nested path", key: "address.city", wantKind: record.KindText, want: "Ghent"},
		{name: "missing key is empty", key: "ip_address", wantKind: record.KindMissing, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := r.Field(tt.key)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.want, record.Render(v))
		})
	}
}

func TestRender_Constructors(t *testing.T) {
	assert.Equal(t, "hello", record.Render(record.Text("hello")))
	assert.Equal(t, "-3", record.Render(record.Number(-3)))
	assert.Equal(t, "false", record.Render(record.Bool(false)))
	assert.Equal(t, "null", record.Render(record.Null()))
	assert.Equal(t, "", record.Render(record.Missing()))
	assert.Equal(t, `{"a":[1,2]}`, record.Render(record.Structured(`{ "a" : [ 1, 2 ] }`)))
	assert.Equal(t, "structured", record.KindStructured.String())
}

func TestRender_Numbers(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "negative zero", in: math.Copysign(0, -1), want: "0"},
		{name: "large integer stays positional", in: 123456789012345680000, want: "123456789012345680000"},
		{name: "exponent from 1e21", in: 1e21, want: "1e+21"},
		{name: "negative exponent form", in: -2.5e30, want: "-2.5e+30"},
		{name: "small fraction stays positional", in: 0.000001, want: "0.000001"},
		{name: "tiny fraction uses exponent", in: 1.5e-7, want: "1.5e-7"},
		{name: "infinity", in: math.Inf(1), want: "Infinity"},
		{name: "negative infinity", in: math.Inf(-1), want: "-Infinity"},
		{name: "not a number", in: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Render(record.Number(tt.in)))
		})
	}

	r := record.MustParse(`{"zero":-0,"big":1e21}`)
	assert.Equal(t, "0", record.Render(r.Field("zero")))
	assert.Equal(t, "1e+21", record.Render(r.Field("big")))
}

func TestParse_RejectsNonObject(t *testing.T) {
	_, err := record.Parse([]byte(`[1,2]`))
	require.ErrorIs(t, err, record.ErrNotObject)

	_, err = record.Parse([]byte(`{"id":`))
	require.ErrorIs(t, err, record.ErrInvalidJSON)
}

func TestParseArray(t *testing.T) {
	records, err := record.ParseArray([]byte(`[{"id":1},{"id":2},{"id":3}]`))
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		assert.InDelta(t, float64(i+1), r.Field("id").Num(), 0)
	}

	empty, err := record.ParseArray([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = record.ParseArray([]byte(`{"id":1}`))
	require.ErrorIs(t, err, record.ErrNotArray)

	_, err = record.ParseArray([]byte(`[{"id":1}, 2]`))
	require.ErrorIs(t, err, record.ErrNotObject)
	assert.Contains(t, err.Error(), "element 1")
}

func TestRecord_Keys(t *testing.T) {
	r := record.MustParse(`{"id":1,"first_name":"A","email":"a@example.com"}`)
	assert.Equal(t, []string{"id", "first_name", "email"}, r.Keys())
}

func TestRecord_ZeroValue(t *testing.T) {
	var r record.Record
	assert.Equal(t, record.KindMissing, r.Field("id").Kind())
	assert.Empty(t, r.Keys())
}

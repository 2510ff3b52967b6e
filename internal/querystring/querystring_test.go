package querystring

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   string
	}{
		{
			name:   "empty",
			params: map[string]any{},
			want:   "",
		},
		{
			name: "nested objects with sorted keys",
			params: map[string]any{
				"pickup_details": map[string]any{"lng": json.Number("77.6"), "lat": json.Number("12.9")},
				"customer": map[string]any{
					"name":   "A",
					"mobile": map[string]any{"number": "9999999999", "country_code": "+91"},
				},
			},
			want: "customer[mobile][country_code]=%2B91&customer[mobile][number]=9999999999&customer[name]=A" +
				"&pickup_details[lat]=12.9&pickup_details[lng]=77.6",
		},
		{
			name:   "floats and bools",
			params: map[string]any{"p": map[string]any{"lat": 12.90, "ok": true, "n": 3}},
			want:   "p[lat]=12.9&p[n]=3&p[ok]=true",
		},
		{
			name:   "nil omitted",
			params: map[string]any{"a": nil, "b": map[string]any{"c": nil, "d": "x y"}},
			want:   "b[d]=x+y",
		},
		{
			name:   "slices",
			params: map[string]any{"tags": []any{"a", "b"}},
			want:   "tags[]=a&tags[]=b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.params))
		})
	}
}

func TestDecode(t *testing.T) {
	values, err := url.ParseQuery(
		"customer[name]=A&customer[mobile][country_code]=%2B91&customer[mobile][number]=9999999999" +
			"&drop_details={\"lat\":1}&tags[]=a&tags[]=b&plain=1&plain=2")
	require.NoError(t, err)

	got := Decode(values)

	assert.Equal(t, map[string]any{
		"customer": map[string]any{
			"name":   "A",
			"mobile": map[string]any{"country_code": "+91", "number": "9999999999"},
		},
		"drop_details": `{"lat":1}`,
		"tags":         []any{"a", "b"},
		"plain":        "1",
	}, got)
}

func TestDecode_ObjectWinsOverScalar(t *testing.T) {
	values := url.Values{
		"pickup_details":      {"oops"},
		"pickup_details[lat]": {"12.9"},
	}

	got := Decode(values)
	assert.Equal(t, map[string]any{"lat": "12.9"}, got["pickup_details"])
}

func TestDecode_MalformedBracketsStayPlain(t *testing.T) {
	values := url.Values{
		"a[b":    {"1"},
		"[x]":    {"2"},
		"c[][d]": {"3"},
	}

	got := Decode(values)
	assert.Equal(t, "1", got["a[b"])
	assert.Equal(t, "2", got["[x]"])
	assert.Equal(t, "3", got["c[][d]"])
}

func TestRoundTripThroughURLValues(t *testing.T) {
	params := map[string]any{
		"customer": map[string]any{
			"name":   "A B",
			"mobile": map[string]any{"country_code": "+91", "number": "9999999999"},
		},
	}

	values, err := url.ParseQuery(Encode(params))
	require.NoError(t, err)
	assert.Equal(t, params, Decode(values))
}

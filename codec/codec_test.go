package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	type payload struct {
		Size  int       `json:"size"`
		Elems []float64 `json:"elems"`
	}

	in := payload{Size: 3, Elems: []float64{1.5, -2, 0}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

// The two JSON codecs must stay wire-compatible: files written by one must
// decode with the other.
func TestCrossCodecCompatibility(t *testing.T) {
	in := map[string]any{"size": float64(2), "elems": []any{float64(1), float64(2)}}

	stdData, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, GoJSON{}.Unmarshal(stdData, &out))
	assert.Equal(t, in, out)
}

func TestMustMarshal(t *testing.T) {
	assert.NotPanics(t, func() {
		b := MustMarshal(nil, []int{1, 2})
		assert.NotEmpty(t, b)
	})
	assert.Panics(t, func() {
		MustMarshal(JSON{}, func() {}) // funcs are not JSON-encodable
	})
}

package redact

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tcs := []struct {
		name   string
		input  []byte
		expect []byte
	}{
		{
			name:   "empty input produces empty output",
			input:  []byte{},
			expect: []byte{},
		},
		{
			name:   "text without matches passes through",
			input:  []byte(`"hello world"`),
			expect: []byte(`"hello world"`),
		},
		{
			name:   "invalid UTF-8 passes through byte for byte",
			input:  []byte{0xff, 0xfe, 0x00, 0x01},
			expect: []byte{0xff, 0xfe, 0x00, 0x01},
		},
		{
			name:   "credential inside invalid UTF-8 is still passed through",
			input:  append([]byte{0xff}, []byte(`"`+testURL+`"`)...),
			expect: append([]byte{0xff}, []byte(`"`+testURL+`"`)...),
		},
		{
			name:   "valid UTF-8 is redacted",
			input:  []byte(`export const supabaseUrl = '` + testURL + `';`),
			expect: []byte(`export const supabaseUrl = 'REDACTED_SUPABASE_URL';`),
		},
		{
			name:   "multibyte text survives the round trip",
			input:  []byte("héllo wörld 世界"),
			expect: []byte("héllo wörld 世界"),
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := Filter(buf, bytes.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, buf.Bytes())
		})
	}
}

// Filtering already-filtered output must change nothing, since the placeholders
// match neither credential pattern.
func TestFilter_Idempotent(t *testing.T) {
	input := []byte(`url = "` + testURL + "\"\nkey = `" + testKey + "`\n")

	first := new(bytes.Buffer)
	require.NoError(t, Filter(first, bytes.NewReader(input)))
	assert.NotEqual(t, input, first.Bytes())

	second := new(bytes.Buffer)
	require.NoError(t, Filter(second, bytes.NewReader(first.Bytes())))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testURL = "https://piyqnldhdxkmuwqajkhz.supabase.co"
	testKey = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.abc123_-XYZ.def456_-ABC"
)

func TestDefaults_URLSubstitution(t *testing.T) {
	redactions, err := Defaults()
	require.NoError(t, err)

	tcs := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "double quoted",
			input:  `"` + testURL + `"`,
			expect: `"REDACTED_SUPABASE_URL"`,
		},
		{
			name:   "single quoted",
			input:  `'` + testURL + `'`,
			expect: `'REDACTED_SUPABASE_URL'`,
		},
		{
			name:   "backtick quoted",
			input:  "`" + testURL + "`",
			expect: "`REDACTED_SUPABASE_URL`",
		},
		{
			name:   "embedded in an assignment",
			input:  `const url = "` + testURL + `";`,
			expect: `const url = "REDACTED_SUPABASE_URL";`,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			res, err := String(tc.input, redactions)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, res)
		})
	}
}

func TestDefaults_KeySubstitution(t *testing.T) {
	redactions, err := Defaults()
	require.NoError(t, err)

	tcs := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "backtick quoted",
			input:  "`" + testKey + "`",
			expect: "`REDACTED_SUPABASE_KEY`",
		},
		{
			name:   "double quoted",
			input:  `"` + testKey + `"`,
			expect: `"REDACTED_SUPABASE_KEY"`,
		},
		{
			name:   "single quoted",
			input:  `'` + testKey + `'`,
			expect: `'REDACTED_SUPABASE_KEY'`,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			res, err := String(tc.input, redactions)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, res)
		})
	}
}

func TestDefaults_PatternBoundaries(t *testing.T) {
	redactions, err := Defaults()
	require.NoError(t, err)

	tcs := []struct {
		name  string
		input string
	}{
		{
			name:  "no match passes through",
			input: `"hello world"`,
		},
		{
			name:  "unquoted URL is left alone",
			input: "see " + testURL + " for details",
		},
		{
			name:  "mismatched quote characters do not match",
			input: `"` + testURL + `'`,
		},
		{
			name:  "a different project URL is left alone",
			input: `"https://zzzzzzzzzzzzzzzzzzzz.supabase.co"`,
		},
		{
			name:  "a JWT with a different header is left alone",
			input: `"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.abc.def"`,
		},
		{
			name:  "a two-segment token is left alone",
			input: `"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.abconly"`,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			res, err := String(tc.input, redactions)
			require.NoError(t, err)
			assert.Equal(t, tc.input, res)
		})
	}
}

func TestDefaults_MultipleMatches(t *testing.T) {
	redactions, err := Defaults()
	require.NoError(t, err)

	input := `url = "` + testURL + `"` + "\n" +
		`backup = '` + testURL + `'` + "\n" +
		`key = "` + testKey + `"` + "\n"
	expect := `url = "REDACTED_SUPABASE_URL"` + "\n" +
		`backup = 'REDACTED_SUPABASE_URL'` + "\n" +
		`key = "REDACTED_SUPABASE_KEY"` + "\n"

	res, err := String(input, redactions)
	require.NoError(t, err)
	assert.Equal(t, expect, res)
}

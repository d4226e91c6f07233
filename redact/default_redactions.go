package redact

// Placeholders substituted for matched credential values. Neither placeholder matches
// either credential pattern, so re-running the filter over its own output is a no-op.
const (
	URLPlaceholder = "REDACTED_SUPABASE_URL"
	KeyPlaceholder = "REDACTED_SUPABASE_KEY"
)

const (
	// supabaseURL is the project URL as it appears in source, metacharacters escaped.
	supabaseURL = `https://piyqnldhdxkmuwqajkhz\.supabase\.co`

	// supabaseKey matches the anon key: a JWT whose first segment is the fixed
	// {"alg":"HS256","typ":"JWT"} header, followed by two base64url segments.
	supabaseKey = `eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`
)

// quoteChars are the delimiters a credential may be wrapped in within source files.
var quoteChars = []string{`"`, `'`, "`"}

// Defaults returns the built-in credential redactions. A match must be surrounded by the
// same quote character on both sides, and the replacement keeps that character. RE2 has
// no backreferences, so the rule is expressed as one matcher per quote character rather
// than a captured delimiter.
func Defaults() ([]*Redact, error) {
	redactions := make([]*Redact, 0, 2*len(quoteChars))
	for _, q := range quoteChars {
		url, err := New(q+supabaseURL+q, q+URLPlaceholder+q)
		if err != nil {
			return nil, err
		}
		key, err := New(q+supabaseKey+q, q+KeyPlaceholder+q)
		if err != nil {
			return nil, err
		}
		redactions = append(redactions, url, key)
	}
	return redactions, nil
}

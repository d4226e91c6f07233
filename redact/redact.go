package redact

import (
	"bytes"
	"io"
	"regexp"
	"strings"
)

const DefaultReplace = "<REDACTED>"

// Redact pairs a compiled matcher with the literal text that replaces every match.
type Redact struct {
	matcher *regexp.Regexp
	Replace string `json:"replace"`
}

// New takes the matcher as a string and returns a compiled and ready-to-use redaction.
// Replace is optional and can be left empty.
func New(matcher, replace string) (*Redact, error) {
	r, err := regexp.Compile(matcher)
	if err != nil {
		return nil, err
	}
	if replace == "" {
		replace = DefaultReplace
	}
	return &Redact{r, replace}, nil
}

func (x Redact) Apply(w io.Writer, r io.Reader) error {
	bts, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bts) == 0 {
		_, err = w.Write(bts)
		if err != nil {
			return err
		}
		return nil
	}
	newBts := x.matcher.ReplaceAllLiteral(bts, []byte(x.Replace))
	_, err = w.Write(newBts)
	if err != nil {
		return err
	}

	return nil
}

// ApplyMany takes a slice of redactions and a writer + reader, reading everything in and applying redactions in
// sequential order before writing. Therefore, each Redact that appears earlier in the list takes precedence over later
// Redacts. It is possible for redactions to collide with one another if a matcher can match with the Replace string
// of an earlier Redact.
func ApplyMany(redactions []*Redact, w io.Writer, r io.Reader) error {
	bts, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bts) == 0 {
		_, err = w.Write(bts)
		if err != nil {
			return err
		}
		return nil
	}
	for _, redact := range redactions {
		bts = redact.matcher.ReplaceAllLiteral(bts, []byte(redact.Replace))
	}
	_, err = w.Write(bts)
	if err != nil {
		return err
	}
	return nil
}

// String takes a string result and a slice of redactions, and wraps it with a reader and writer to apply the
// redactions, returning a string back.
func String(result string, redactions []*Redact) (string, error) {
	r := strings.NewReader(result)
	buf := new(bytes.Buffer)
	err := ApplyMany(redactions, buf, r)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

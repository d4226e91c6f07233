package redact

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// Filter reads all of r and writes it to w with the default credential redactions
// applied. Input that is not valid UTF-8 is passed through byte for byte; no partial
// redaction is attempted on binary data. Empty input produces empty output.
func Filter(w io.Writer, r io.Reader) error {
	bts, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if !utf8.Valid(bts) {
		_, err = w.Write(bts)
		return err
	}
	redactions, err := Defaults()
	if err != nil {
		return err
	}
	return ApplyMany(redactions, w, bytes.NewReader(bts))
}

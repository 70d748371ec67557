package util

import (
	"bytes"
	"encoding/json"
)

// JSONText decodes any JSON value into text. Strings come through
// unquoted, null becomes "", and anything else keeps its compact JSON form,
// so a numeric answer key of 1 reads as "1".
type JSONText string

func (t *JSONText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = JSONText(s)
		return nil
	}

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*t = JSONText(buf.String())
	return nil
}

func (t JSONText) String() string { return string(t) }

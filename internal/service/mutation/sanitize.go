package mutation

import "strings"

// Sanitize strips the echoed preamble from a transformation reply. The model
// is prompted with a separator line before the input text and sometimes
// echoes instructions back; everything up to and including the LAST "==="
// marker is dropped and the remainder trimmed. Replies without the marker
// are only trimmed. Total function, no error conditions.
func Sanitize(raw string) string {
	if pos := strings.LastIndex(raw, "==="); pos >= 0 {
		return strings.TrimSpace(raw[pos+3:])
	}
	return strings.TrimSpace(raw)
}

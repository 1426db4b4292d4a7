package template

import "strings"

// Marker replaced in ScintillaImpl.template.hpp.
const DefaultMarker = "REPLACEME"

// Splice replaces the first occurrence of marker with body.
// When the marker is missing the document is returned unchanged and found is false.
func Splice(document string, marker string, body string) (result string, found bool) {
	if marker == "" || !strings.Contains(document, marker) {
		return document, false
	}

	return strings.Replace(document, marker, body, 1), true
}

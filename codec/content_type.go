package codec

import (
	"fmt"
	"strings"
)

// ContentType enumerates the body formats gofetch can negotiate.
// The zero value is JSON.
type ContentType int

const (
	// JSON is application/json.
	JSON ContentType = iota
	// TextXML is text/xml.
	TextXML
	// ApplicationXML is application/xml.
	ApplicationXML
	// URLEncoded is application/x-www-form-urlencoded.
	URLEncoded
)

// MIME strings for each content type.
const (
	MIMEJSON           = "application/json"
	MIMETextXML        = "text/xml"
	MIMEApplicationXML = "application/xml"
	MIMEURLEncoded     = "application/x-www-form-urlencoded"
)

// Default is the content type assumed when nothing else is known.
const Default = JSON

// String returns the canonical MIME string.
func (c ContentType) String() string {
	switch c {
	case JSON:
		return MIMEJSON
	case TextXML:
		return MIMETextXML
	case ApplicationXML:
		return MIMEApplicationXML
	case URLEncoded:
		return MIMEURLEncoded
	default:
		return fmt.Sprintf("ContentType(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared content types.
func (c ContentType) Valid() bool {
	return c >= JSON && c <= URLEncoded
}

// IsXML reports whether c is one of the XML variants.
func (c ContentType) IsXML() bool {
	return c == TextXML || c == ApplicationXML
}

// Lookup matches s exactly (case-sensitive) against the canonical MIME strings.
func Lookup(s string) (ContentType, bool) {
	switch s {
	case MIMEJSON:
		return JSON, true
	case MIMETextXML:
		return TextXML, true
	case MIMEApplicationXML:
		return ApplicationXML, true
	case MIMEURLEncoded:
		return URLEncoded, true
	default:
		return Default, false
	}
}

// Parse is Lookup with the JSON fallback: it never fails.
func Parse(s string) ContentType {
	ct, _ := Lookup(s)
	return ct
}

// FromHeader resolves the content type declared by a Content-Type header
// value. Media type parameters such as charset are ignored; an empty or
// unrecognized value resolves to JSON.
func FromHeader(value string) ContentType {
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = value[:i]
	}
	return Parse(strings.TrimSpace(value))
}

// MarshalText implements encoding.TextMarshaler.
func (c ContentType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("codec: invalid content type %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike Parse it rejects
// unknown values so that typos in configuration files are reported.
func (c *ContentType) UnmarshalText(text []byte) error {
	ct, ok := Lookup(string(text))
	if !ok {
		return fmt.Errorf("codec: unknown content type %q", string(text))
	}
	*c = ct
	return nil
}

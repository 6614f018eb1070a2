package codec

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/kbukum/gofetch/errors"
)

// Codec names used to tag serialization and deserialization errors.
const (
	NameJSON       = "json"
	NameXML        = "xml"
	NameURLEncoded = "urlencoded"
)

// Codec encodes values to bytes and decodes bytes into values for one format.
type Codec interface {
	// Name identifies the codec in errors and logs.
	Name() string
	// Marshal encodes v.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into the value pointed to by v.
	Unmarshal(data []byte, v any) error
}

var (
	jsonC Codec = jsonCodec{}
	xmlC  Codec = xmlCodec{}
	formC Codec = formCodec{}
)

// For returns the codec serving ct. Invalid content types get the JSON codec.
func For(ct ContentType) Codec {
	switch ct {
	case TextXML, ApplicationXML:
		return xmlC
	case URLEncoded:
		return formC
	default:
		return jsonC
	}
}

// Marshal encodes v with the codec for ct. Failures, including panics raised
// by custom marshalers, are returned as serialization errors tagged with the
// codec name.
func Marshal(v any, ct ContentType) (data []byte, err error) {
	c := For(ct)
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = errors.Serialization(c.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	data, err = c.Marshal(v)
	if err != nil {
		return nil, errors.Serialization(c.Name(), err)
	}
	return data, nil
}

// Unmarshal decodes data into v with the codec for ct. XML input must be
// valid UTF-8; anything else fails with an invalid-encoding error before the
// XML decoder runs.
func Unmarshal(data []byte, ct ContentType, v any) (err error) {
	c := For(ct)
	defer func() {
		if r := recover(); r != nil {
			err = errors.Deserialization(c.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	if ct.IsXML() && !utf8.Valid(data) {
		return errors.InvalidEncoding(c.Name())
	}
	if err := c.Unmarshal(data, v); err != nil {
		return errors.Deserialization(c.Name(), err)
	}
	return nil
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return NameJSON }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type xmlCodec struct{}

func (xmlCodec) Name() string                       { return NameXML }
func (xmlCodec) Marshal(v any) ([]byte, error)      { return xml.Marshal(v) }
func (xmlCodec) Unmarshal(data []byte, v any) error { return xml.Unmarshal(data, v) }

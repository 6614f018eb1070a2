package codec

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/go-querystring/query"
)

// formTag is the struct tag shared by encoding and decoding, so a struct
// tagged for go-querystring round-trips through this codec.
const formTag = "url"

type formCodec struct{}

func (formCodec) Name() string { return NameURLEncoded }

// Marshal accepts url.Values, string-keyed maps, and structs (or pointers to
// structs) tagged with `url:"..."`.
func (formCodec) Marshal(v any) ([]byte, error) {
	values, err := toValues(v)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// Unmarshal decodes into *url.Values, *map[string][]string,
// *map[string]string, or a pointer to a struct. Struct fields are matched by
// their `url` tag and converted from text with weak typing.
func (formCodec) Unmarshal(data []byte, v any) error {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return err
	}

	switch t := v.(type) {
	case *url.Values:
		*t = values
		return nil
	case *map[string][]string:
		*t = values
		return nil
	case *map[string]string:
		m := make(map[string]string, len(values))
		for k := range values {
			m[k] = values.Get(k)
		}
		*t = m
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          formTag,
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(flatten(values))
}

func toValues(v any) (url.Values, error) {
	switch t := v.(type) {
	case url.Values:
		return t, nil
	case map[string][]string:
		return url.Values(t), nil
	case map[string]string:
		values := make(url.Values, len(t))
		for k, s := range t {
			values.Set(k, s)
		}
		return values, nil
	case map[string]any:
		values := make(url.Values, len(t))
		for k, x := range t {
			values.Set(k, fmt.Sprint(x))
		}
		return values, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && !(rv.Kind() == reflect.Pointer && rv.Type().Elem().Kind() == reflect.Struct) {
		return nil, fmt.Errorf("cannot encode %T as %s", v, MIMEURLEncoded)
	}
	return query.Values(v)
}

// flatten collapses single-valued keys to plain strings so scalar struct
// fields decode without a slice.
func flatten(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			out[k] = vs[0]
			continue
		}
		out[k] = vs
	}
	return out
}

package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kbukum/gofetch/errors"
)

// buildURL joins base and path with exactly one slash and appends params
// verbatim. The result must be an absolute URL with a host.
func buildURL(base, path string, params []Param) (*url.URL, error) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteByte('/')
	b.WriteString(strings.TrimLeft(path, "/"))

	if len(params) > 0 {
		if strings.Contains(path, "?") {
			b.WriteByte('&')
		} else {
			b.WriteByte('?')
		}
		for i, p := range params {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
	}

	raw := b.String()
	u, err := parseAbsolute(raw)
	if err != nil {
		return nil, errors.InvalidURL(raw, err)
	}
	return u, nil
}

func parseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("missing scheme")
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host")
	}
	return u, nil
}

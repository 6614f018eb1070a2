package fetch

import (
	"net/http"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/version"
)

// Header names that are always present on a request.
const (
	HeaderUserAgent   = "User-Agent"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
)

// effective is the merged configuration used for one call.
type effective struct {
	headers     map[string]string
	contentType codec.ContentType
	accept      codec.ContentType
}

// merge overlays call options on client config. Header names are
// canonicalized so later layers replace earlier ones regardless of case.
// Neither input is modified.
func merge(cfg *Config, opts *Options) effective {
	eff := effective{
		headers:     make(map[string]string),
		contentType: codec.Default,
		accept:      codec.Default,
	}

	if cfg != nil {
		overlay(eff.headers, cfg.Headers)
		eff.contentType = cfg.ContentType
		eff.accept = cfg.Accept
	}
	if opts != nil {
		overlay(eff.headers, opts.Headers)
		if opts.ContentType != nil {
			eff.contentType = *opts.ContentType
		}
		if opts.Accept != nil {
			eff.accept = *opts.Accept
		}
	}

	eff.headers[HeaderUserAgent] = version.UserAgent()
	eff.headers[HeaderContentType] = eff.contentType.String()
	eff.headers[HeaderAccept] = eff.accept.String()
	return eff
}

func overlay(dst, src map[string]string) {
	for k, v := range src {
		dst[http.CanonicalHeaderKey(k)] = v
	}
}

package fetch

import (
	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/transport"
)

// classify fails responses with a client or server error status.
func classify(resp *transport.Response) error {
	if resp.StatusCode >= 400 && resp.StatusCode <= 599 {
		return errors.Network(resp.StatusCode, resp.Header, resp.Body)
	}
	return nil
}

// Package hello writes the canned reply every accepted connection receives.
// The request is never read.
package hello

import (
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/pysugar/cloudhello/errors"
)

const Response = "HTTP/1.1 200 OK\r\nContent-Length: 17\r\n\r\nHello from cloud!"

// Sentinel trails Response on the wire. It is not part of the HTTP message and
// clients that check framing will see it as garbage; it stays for byte compatibility
// with existing deployments.
var Sentinel = []byte{0}

// Handler answers one connection.
type Handler func(w io.Writer) error

var _ Handler = Handle

// Handle writes Response and Sentinel as two separate writes. Short writes are not retried.
func Handle(w io.Writer) error {
	if _, err := w.Write([]byte(Response)); err != nil {
		return errors.Single(errors.ErrWrite, pkgerrors.Wrap(err, "write response"))
	}
	if _, err := w.Write(Sentinel); err != nil {
		return errors.Single(errors.ErrWrite, pkgerrors.Wrap(err, "write sentinel"))
	}
	return nil
}

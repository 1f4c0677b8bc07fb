//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package server

import (
	"runtime"
	"syscall"

	pkgerrors "github.com/pkg/errors"
)

func reusePort(network, address string, c syscall.RawConn) error {
	return pkgerrors.Errorf("SO_REUSEPORT is not supported on %s", runtime.GOOS)
}

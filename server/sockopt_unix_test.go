//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pysugar/cloudhello/hello"
	. "github.com/pysugar/cloudhello/server"
)

func TestListenReusePort(t *testing.T) {
	logger, _ := newLogger()
	first := New(Config{Address: "127.0.0.1:0", ReusePort: true}, hello.Handle, logger)

	lis1, err := first.Listen(context.Background())
	require.NoError(t, err)
	defer lis1.Close()

	second := New(Config{Address: lis1.Addr().String(), ReusePort: true}, hello.Handle, logger)
	lis2, err := second.Listen(context.Background())
	require.NoError(t, err)
	defer lis2.Close()

	require.Equal(t, lis1.Addr().String(), lis2.Addr().String())
}

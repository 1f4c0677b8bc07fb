// Package server accepts TCP connections and answers them strictly one at a time.
//
// A connection is accepted, handled inline and closed before the next Accept call,
// so the OS backlog is the only queue. Any I/O error ends Serve; there is no
// per-connection isolation.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/pires/go-proxyproto"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pysugar/cloudhello/errors"
	"github.com/pysugar/cloudhello/hello"
)

// DefaultProxyHeaderTimeout bounds how long a connection may hold the accept loop
// before its PROXY header arrives.
const DefaultProxyHeaderTimeout = time.Second

type Config struct {
	// Address is host:port, usually platform.ListenAddress(platform.ResolvePort()).
	Address string
	// ProxyProtocol consumes PROXY v1/v2 headers sent by a load balancer in front of the server.
	ProxyProtocol bool
	// ProxyHeaderTimeout defaults to DefaultProxyHeaderTimeout. A connection without a
	// header is served as a plain connection once it expires.
	ProxyHeaderTimeout time.Duration
	// ReusePort sets SO_REUSEPORT on the listening socket.
	ReusePort bool
	// Banner receives the startup line. Defaults to os.Stdout.
	Banner io.Writer
}

type Server struct {
	config  Config
	handler hello.Handler
	logger  logrus.FieldLogger
	served  atomic.Uint64
}

func New(config Config, handler hello.Handler, logger logrus.FieldLogger) *Server {
	if handler == nil {
		handler = hello.Handle
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{
		config:  config,
		handler: handler,
		logger:  logger,
	}
}

// Served returns how many connections have been answered completely.
func (s *Server) Served() uint64 {
	return s.served.Load()
}

func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	lc := &net.ListenConfig{}
	if s.config.ReusePort {
		lc.Control = reusePort
	}

	lis, err := lc.Listen(ctx, "tcp", s.config.Address)
	if err != nil {
		return nil, errors.Single(errors.ErrBind, pkgerrors.Wrapf(err, "listen on %s", s.config.Address))
	}

	if s.config.ProxyProtocol {
		timeout := s.config.ProxyHeaderTimeout
		if timeout <= 0 {
			timeout = DefaultProxyHeaderTimeout
		}
		lis = &proxyproto.Listener{Listener: lis, ReadHeaderTimeout: timeout}
	}
	return lis, nil
}

// ListenAndServe binds, prints the startup line and serves until ctx is done or an I/O error occurs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := s.Listen(ctx)
	if err != nil {
		return err
	}
	defer lis.Close()

	banner := s.config.Banner
	if banner == nil {
		banner = os.Stdout
	}
	fmt.Fprintf(banner, "Listening at port %s\n", portOf(lis.Addr()))

	return s.Serve(ctx, lis)
}

// Serve runs the accept loop on lis. It returns nil once ctx is cancelled, otherwise
// the first accept or handler error.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = lis.Close()
	})
	defer stop()

	s.logger.WithFields(logrus.Fields{
		"address":        lis.Addr(),
		"proxy_protocol": s.config.ProxyProtocol,
	}).Debug("accepting connections")

	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.WithField("served", s.Served()).Info("server stopped")
				return nil
			}
			return errors.Single(errors.ErrAccept, err)
		}

		if err := s.serveConn(conn); err != nil {
			return err
		}
	}
}

func (s *Server) serveConn(conn net.Conn) error {
	defer conn.Close()

	log := s.logger.WithFields(logrus.Fields{
		"remote": conn.RemoteAddr(),
		"local":  conn.LocalAddr(),
	})
	log.Debug("accepted connection")

	if err := s.handler(conn); err != nil {
		log.WithError(err).Error("failed to answer connection")
		return err
	}

	log.WithField("served", s.served.Add(1)).Debug("response written")
	return nil
}

func portOf(addr net.Addr) string {
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprint(tcpAddr.Port)
	}
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return port
}

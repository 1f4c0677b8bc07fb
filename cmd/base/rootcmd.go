package base

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pysugar/cloudhello/hello"
	"github.com/pysugar/cloudhello/platform"
	"github.com/pysugar/cloudhello/server"
)

var rootCmd = &cobra.Command{
	Use:   "cloudhello",
	Short: "Answer every TCP connection with a fixed hello response",
	Long: `
Bind 0.0.0.0:$PORT (default 3000) and answer each connection, one at a time,
with a fixed HTTP/1.1 200 response followed by a single zero byte.
`,
	Version:       Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		proxyProtocol, _ := cmd.Flags().GetBool("proxy-protocol")
		proxyHeaderTimeout, _ := cmd.Flags().GetDuration("proxy-header-timeout")
		reusePort, _ := cmd.Flags().GetBool("reuse-port")
		verbose, _ := cmd.Flags().GetBool("verbose")

		logger := NewLogger(verbose)
		srv := server.New(server.Config{
			Address:            platform.ListenAddress(port),
			ProxyProtocol:      proxyProtocol,
			ProxyHeaderTimeout: proxyHeaderTimeout,
			ReusePort:          reusePort,
			Banner:             cmd.OutOrStdout(),
		}, hello.Handle, logger)

		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	rootCmd.SetVersionTemplate(strings.Join(VersionStatement(), "\n") + "\n")
	rootCmd.Flags().StringP("port", "p", platform.ResolvePort(), "listen port, defaults to $PORT or 3000")
	rootCmd.Flags().Bool("proxy-protocol", platform.NewEnvFlag(platform.ProxyProtocolEnv).GetValueAsBool(false), "expect a PROXY protocol header on every connection")
	rootCmd.Flags().Duration("proxy-header-timeout", server.DefaultProxyHeaderTimeout, "how long to wait for a PROXY header before serving the connection as plain TCP")
	rootCmd.Flags().Bool("reuse-port", platform.NewEnvFlag(platform.ReusePortEnv).GetValueAsBool(false), "set SO_REUSEPORT on the listening socket")
	rootCmd.Flags().BoolP("verbose", "V", false, "Verbose mode")
}

func NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func AddSubCommands(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// Run executes the root command and exits non-zero on the first error.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Error("cloudhello stopped")
		os.Exit(1)
	}
}

package platform

import (
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	PortEnv          = "PORT"
	DefaultPort      = "3000"
	DefaultHost      = "0.0.0.0"
	ProxyProtocolEnv = "cloudhello.proxy.protocol"
	ReusePortEnv     = "cloudhello.reuse.port"
)

type EnvFlag struct {
	Name    string
	AltName string
}

func NewEnvFlag(name string) EnvFlag {
	return EnvFlag{
		Name:    name,
		AltName: NormalizeEnvName(name),
	}
}

// GetValue looks up Name, then AltName. A variable that is set but empty still counts as set.
func (f EnvFlag) GetValue(defaultValue func() string) string {
	if v, found := os.LookupEnv(f.Name); found {
		return v
	}
	if len(f.AltName) > 0 && f.AltName != f.Name {
		if v, found := os.LookupEnv(f.AltName); found {
			return v
		}
	}

	return defaultValue()
}

func (f EnvFlag) GetValueAsBool(defaultValue bool) bool {
	useDefaultValue := false
	s := f.GetValue(func() string {
		useDefaultValue = true
		return ""
	})
	if useDefaultValue {
		return defaultValue
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return v
}

func NormalizeEnvName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), ".", "_")
}

// ResolvePort returns the port the server should bind. The value is not validated,
// a malformed port surfaces as a bind error.
func ResolvePort() string {
	return NewEnvFlag(PortEnv).GetValue(func() string { return DefaultPort })
}

// ListenAddress joins the wildcard host with port.
func ListenAddress(port string) string {
	return net.JoinHostPort(DefaultHost, port)
}

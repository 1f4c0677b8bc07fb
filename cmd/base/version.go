package base

import (
	"fmt"
	"runtime"
)

var (
	Version_x byte = 0
	Version_y byte = 1
	Version_z byte = 0
)

var (
	build    = "Custom"
	codename = "cloudhello, a sequential TCP hello server."
	intro    = "Every connection gets the same answer."
)

func Version() string {
	return fmt.Sprintf("%v.%v.%v", Version_x, Version_y, Version_z)
}

// VersionStatement returns a list of strings representing the full version info.
func VersionStatement() []string {
	return []string{
		fmt.Sprintf("cloudhello %s (%s) %s (%s %s/%s)", Version(), codename, build, runtime.Version(), runtime.GOOS, runtime.GOARCH),
		intro,
	}
}

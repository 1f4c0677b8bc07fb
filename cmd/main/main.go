package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pysugar/cloudhello/cmd/base"
)

var (
	versionCmd = &cobra.Command{
		Use:   `version`,
		Short: "Show current version of cloudhello",
		Long:  `Version prints the build information for cloudhello executables`,
		Run: func(cmd *cobra.Command, args []string) {
			version := base.VersionStatement()
			for _, s := range version {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		},
	}
)

func main() {
	base.AddSubCommands(versionCmd)

	base.Run()
}

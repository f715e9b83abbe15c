/*
Semibench exercises a pair of ordered backend maps the way a bidirectional map
does: every association is stored as a key half and a value half in a forward
map, and as the sibling halves in a reverse map. Removals are coordinated across
both maps and the halves are reunited.

Usage:

	semibench run [--ops N] [--keys N] [--seed S] [--metrics] [--no-color]
	semibench dot [--keys N]
	semibench version

Flags may be set from the environment with prefix SEMIBENCH_ (e.g.,
SEMIBENCH_OPS=100000). Files .env and .env.local are loaded if present.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Version is the version of semibench.
	Version = "0.1.0"
)

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Every command tree has its own viper
// instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "semibench",
		Short: "workload driver for split-ownership backend maps",
		Long: fmt.Sprintf(`semibench (v%s)

Drives a forward and a reverse ordered map sharing halves of their entries,
and checks that every removed pair is reunited.`, Version),
		SilenceUsage: true,
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of semibench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "semibench v%s\n", Version)
		},
	}
	root.AddCommand(newRunCmd(v))
	root.AddCommand(newDotCmd(v))
	root.AddCommand(versionCmd)
	return root
}

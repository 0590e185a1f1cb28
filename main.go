// Command shipwheel automates cutting releases of setuptools-based Python
// projects: building a wheel, publishing it to a package index, and the
// occasional bit of repository hygiene around credentials files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/norok2/shipwheel/pkg/cliutil"
)

var argparser = &cobra.Command{
	Use:   "shipwheel {[flags]|SUBCOMMAND...}",
	Short: "Build and publish Python distributions",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,

	SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
	SilenceUsage:  true, // our FlagErrorFunc will handle it
}

func init() {
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
}

func main() {
	ctx := context.Background()

	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}

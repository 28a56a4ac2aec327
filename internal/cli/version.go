package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with
// -ldflags "-X github.com/sweengineeringlabs/eprocurement-sub002/internal/cli.Version=...".
var Version = "0.1.0-dev"

const modulePath = "github.com/sweengineeringlabs/eprocurement-sub002"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the eproc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "eproc v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}

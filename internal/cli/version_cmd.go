package cli

import (
	"github.com/mugiliam/hatchrelclient/pkg/api"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and API version",
		Args:  cobra.NoArgs,
		// no config or client needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), api.Version())
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sagecrypto"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(sagecrypto.Version)
		},
	}
}

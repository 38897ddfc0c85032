package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keyidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyid <name>",
		Short: "Print the key ID of a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			kp, err := store.Load(passphrase, args[0])
			if err != nil {
				return err
			}
			defer kp.Dispose()

			fmt.Printf("Key ID: %s\n", kp.KeyID())
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored key names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := store.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sagecrypto/crypto"
)

func keygenCmd() *cobra.Command {
	var algName string

	cmd := &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a key pair and store it encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			alg, err := crypto.ParseAlgorithm(algName)
			if err != nil {
				return err
			}

			start := time.Now()
			kp, err := crypto.Generate(alg)
			if err != nil {
				return err
			}
			defer kp.Dispose()

			if err := store.Save(passphrase, args[0], kp); err != nil {
				return err
			}
			logger.Debug().
				Str("algorithm", alg.String()).
				Dur("took", time.Since(start)).
				Msg("key pair generated")

			fmt.Printf("Key created.\nName:      %s\nAlgorithm: %s\nKey ID:    %s\n",
				args[0], alg, kp.KeyID())
			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "ed25519", "key algorithm (ed25519 or secp256k1)")
	return cmd
}

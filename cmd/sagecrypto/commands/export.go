package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sagecrypto/formats"
	"sagecrypto/memzero"
)

func exportCmd() *cobra.Command {
	var (
		formatName string
		public     bool
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a stored key as JWK or PEM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			format, err := formats.ParseFormat(formatName)
			if err != nil {
				return err
			}
			kp, err := store.Load(passphrase, args[0])
			if err != nil {
				return err
			}
			defer kp.Dispose()

			var out []byte
			if public {
				out, err = formats.ExportPublicKey(kp.PublicKey(), format)
			} else {
				logger.Warn().Str("name", args[0]).Msg("exporting private key material")
				out, err = formats.ExportKeyPair(kp, format)
				defer memzero.Zero(out)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "pem", "output format (jwk or pem)")
	cmd.Flags().BoolVar(&public, "public", false, "export only the public key")
	return cmd
}

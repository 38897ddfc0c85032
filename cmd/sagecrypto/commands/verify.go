package commands

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sagecrypto/crypto"
	"sagecrypto/formats"
)

func verifyCmd() *cobra.Command {
	var (
		pubFile    string
		formatName string
		inFile     string
	)

	cmd := &cobra.Command{
		Use:   "verify <name|-> [message] <signature>",
		Short: "Verify a base64 signature over a message",
		Long: "Verify checks a signature using a stored key's public half, or, with\n" +
			"--pub, a public key file ('-' for the name skips the keystore).",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigB64 := args[len(args)-1]
			message, err := readMessage(args[1:len(args)-1], inFile)
			if err != nil {
				return err
			}

			pub, err := resolvePublicKey(args[0], pubFile, formatName)
			if err != nil {
				return err
			}

			raw, err := base64.StdEncoding.DecodeString(sigB64)
			if err != nil {
				return fmt.Errorf("decoding signature: %w", err)
			}
			sig, err := crypto.SignatureFromBytes(pub.Algorithm(), raw)
			if err != nil {
				return err
			}

			if err := pub.Verify(message, sig); err != nil {
				return err
			}
			fmt.Println("Signature valid.")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubFile, "pub", "", "public key file to verify against")
	cmd.Flags().StringVarP(&formatName, "format", "f", "pem", "public key file format (jwk or pem)")
	cmd.Flags().StringVar(&inFile, "file", "", "verify the contents of a file instead of an argument")
	return cmd
}

// resolvePublicKey loads the public key from --pub when given, otherwise
// from the named keystore entry.
func resolvePublicKey(name, pubFile, formatName string) (crypto.PublicKey, error) {
	if pubFile != "" {
		format, err := formats.ParseFormat(formatName)
		if err != nil {
			return crypto.PublicKey{}, err
		}
		data, err := os.ReadFile(pubFile)
		if err != nil {
			return crypto.PublicKey{}, err
		}
		return formats.ImportPublicKey(data, format)
	}

	if err := requirePassphrase(); err != nil {
		return crypto.PublicKey{}, err
	}
	kp, err := store.Load(passphrase, name)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	defer kp.Dispose()
	return kp.PublicKey(), nil
}

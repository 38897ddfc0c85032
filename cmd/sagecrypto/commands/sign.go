package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "sign <name> [message]",
		Short: "Sign a message with a stored key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			message, err := readMessage(args[1:], inFile)
			if err != nil {
				return err
			}
			kp, err := store.Load(passphrase, args[0])
			if err != nil {
				return err
			}
			defer kp.Dispose()

			start := time.Now()
			sig, err := kp.Sign(message)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("key_id", kp.KeyID()).
				Int("message_bytes", len(message)).
				Dur("took", time.Since(start)).
				Msg("message signed")

			fmt.Println(sig.Base64())
			return nil
		},
	}
	cmd.Flags().StringVar(&inFile, "file", "", "sign the contents of a file instead of an argument")
	return cmd
}

// readMessage resolves the message bytes from the argument or --file.
func readMessage(args []string, inFile string) ([]byte, error) {
	switch {
	case inFile != "" && len(args) > 0:
		return nil, fmt.Errorf("give a message argument or --file, not both")
	case inFile != "":
		return os.ReadFile(inFile)
	case len(args) > 0:
		return []byte(args[0]), nil
	default:
		return nil, fmt.Errorf("no message given")
	}
}

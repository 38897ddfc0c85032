package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sagecrypto"
	"sagecrypto/internal/keystore"
)

var (
	home       string
	passphrase string
	verbose    bool

	store  *keystore.Store
	logger zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "sagecrypto",
		Short:        "Generate, store, and use signing keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().Level(level)

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sagecrypto")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			store = keystore.New(filepath.Join(home, "keys"))

			if err := sagecrypto.Initialize(); err != nil {
				return err
			}
			logger.Debug().Str("home", home).Str("version", sagecrypto.Version).Msg("ready")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.sagecrypto)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored keys")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(keygenCmd(), keyidCmd(), listCmd(), exportCmd(), signCmd(), verifyCmd(), versionCmd())
	return root.Execute()
}

// requirePassphrase guards commands that touch the keystore.
func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}

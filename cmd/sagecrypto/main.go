package main

import (
	"os"

	"sagecrypto/cmd/sagecrypto/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

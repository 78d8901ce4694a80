// Package main is the entry point for the textbook-rsa-cli application.
// It registers the key generation, encryption, decryption and bench
// sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `textbook-rsa-cli generates textbook RSA key pairs and encrypts or decrypts
messages with them. There is no padding: a message is encrypted as a single
integer and must stay below the modulus.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	handler, err := commands.NewRSACommandHandler(nil)
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	commands.InitRSACommands(rootCmd, handler)
	commands.InitBenchCommands(rootCmd, handler)

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	random io.Reader
	logger logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging.
// A nil random uses crypto/rand.
func NewRSACommandHandler(random io.Reader) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{
		random: random,
		logger: loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair and writes <key-name> and <key-name>.pub into key-dir.
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	keyName, err := cmd.Flags().GetString("key-name")
	if err != nil {
		return fmt.Errorf("invalid key-name flag: %w", err)
	}

	processor, err := newProcessor(keySize, config.CiphertextEncodingBase64, commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}

	publicKey, privateKey, err := processor.GenerateKeys(keySize)
	if err != nil {
		return err
	}

	privateKeyFilePath := filepath.Join(keyDir, keyName)
	if err := processor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := privateKeyFilePath + ".pub"
	if err := processor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s & %s have been generated.\n", publicKeyFilePath, privateKeyFilePath)
	return nil
}

// EncryptCmd encrypts a message read from --message, --input-file or stdin.
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return fmt.Errorf("invalid encoding flag: %w", err)
	}

	processor, err := newProcessor(config.DefaultKeySize, encoding, commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}

	publicKey, err := processor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	message, err := readInput(cmd, "message", "message")
	if err != nil {
		return err
	}

	cipherText, err := processor.Encrypt(message, publicKey)
	if err != nil {
		return err
	}

	return writeOutput(cmd, cipherText)
}

// DecryptCmd decrypts a ciphertext read from --secret, --input-file or stdin.
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return fmt.Errorf("invalid encoding flag: %w", err)
	}

	processor, err := newProcessor(config.DefaultKeySize, encoding, commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}

	privateKey, err := processor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	secret, err := readInput(cmd, "secret", "secret")
	if err != nil {
		return err
	}

	plainText, err := processor.Decrypt(secret, privateKey)
	if err != nil {
		return err
	}

	return writeOutput(cmd, plainText)
}

// readInput returns the inline flag value, else the input file, else all of stdin.
func readInput(cmd *cobra.Command, inlineFlag, noun string) (string, error) {
	if cmd.Flags().Changed(inlineFlag) {
		return cmd.Flags().GetString(inlineFlag)
	}

	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFile != "" {
		content, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(content), nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Please input the %s. Ctrl + %s to end.\n", noun, endOfInputKey())
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}

func writeOutput(cmd *cobra.Command, result string) error {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	if outputFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(result), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// InitRSACommands registers the key generation, encryption and decryption commands
func InitRSACommands(rootCmd *cobra.Command, handler *RSACommandHandler) {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a key pair, <key-name> and <key-name>.pub under key-dir",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().Int("key-size", config.DefaultKeySize, "Size of each prime in bits, the modulus has about twice as many")
	generateKeysCmd.Flags().String("key-dir", ".", "Directory to store the keys")
	generateKeysCmd.Flags().String("key-name", "id_rsa", "File name of the private key")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a public key",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("message", "", "Message to encrypt, read from stdin when neither message nor input-file is set")
	encryptCmd.Flags().String("input-file", "", "Path to a file holding the message")
	encryptCmd.Flags().String("public-key", "id_rsa.pub", "Path to the public key")
	encryptCmd.Flags().String("output-file", "", "Path to the ciphertext output file, stdout when empty")
	encryptCmd.Flags().String("encoding", config.CiphertextEncodingBase64, "Ciphertext encoding: "+strings.Join([]string{config.CiphertextEncodingBase64, config.CiphertextEncodingRaw}, "|"))
	encryptCmd.MarkFlagsMutuallyExclusive("message", "input-file")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with a private key",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("secret", "", "Ciphertext to decrypt, read from stdin when neither secret nor input-file is set")
	decryptCmd.Flags().String("input-file", "", "Path to a file holding the ciphertext")
	decryptCmd.Flags().String("private-key", "id_rsa", "Path to the private key")
	decryptCmd.Flags().String("output-file", "", "Path to the plaintext output file, stdout when empty")
	decryptCmd.Flags().String("encoding", config.CiphertextEncodingBase64, "Ciphertext encoding: "+strings.Join([]string{config.CiphertextEncodingBase64, config.CiphertextEncodingRaw}, "|"))
	decryptCmd.MarkFlagsMutuallyExclusive("secret", "input-file")
	rootCmd.AddCommand(decryptCmd)
}

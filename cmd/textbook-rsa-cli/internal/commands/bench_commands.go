package commands

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/codec"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/spf13/cobra"
)

const benchCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789)(*&^%$#@!~"

// BenchCmd times key generation, encryption and decryption of a random message.
func (commandHandler *RSACommandHandler) BenchCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	messageLength, err := cmd.Flags().GetInt("message-length")
	if err != nil {
		return fmt.Errorf("invalid message-length flag: %w", err)
	}
	if messageLength < 1 {
		return fmt.Errorf("message-length must be positive, got %d", messageLength)
	}

	processor, err := newProcessor(keySize, config.CiphertextEncodingBase64, commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "----- Begin bench_gen_key -----")
	start := time.Now()
	publicKey, privateKey, err := processor.GenerateKeys(keySize)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "public key is %s\n", codec.EncodePublicKey(publicKey))
	fmt.Fprintf(out, "Time elapsed: %dms\n", time.Since(start).Milliseconds())
	fmt.Fprintln(out, "------ End bench_gen_key ------")

	message := randomMessage(messageLength)
	if len(message)*8 >= publicKey.ModulusBits() {
		commandHandler.logger.Warn("message of %d bytes does not fit a %d-bit modulus and wraps", len(message), publicKey.ModulusBits())
	}

	fmt.Fprintln(out, "----- Begin bench_encrypt -----")
	start = time.Now()
	cipherText, err := processor.Encrypt(message, publicKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Time elapsed: %dms\n", time.Since(start).Milliseconds())
	fmt.Fprintln(out, "------ End bench_encrypt ------")

	fmt.Fprintln(out, "----- Begin bench_decrypt -----")
	start = time.Now()
	_, err = processor.Decrypt(cipherText, privateKey)
	elapsed := time.Since(start)

	var decodingErr *cryptoalg.DecodingError
	if err != nil && !errors.As(err, &decodingErr) {
		return err
	}
	fmt.Fprintf(out, "Time elapsed: %dms\n", elapsed.Milliseconds())
	fmt.Fprintln(out, "------ End bench_decrypt ------")

	return nil
}

func randomMessage(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = benchCharset[rand.IntN(len(benchCharset))]
	}
	return string(buf)
}

// InitBenchCommands registers the bench command
func InitBenchCommands(rootCmd *cobra.Command, handler *RSACommandHandler) {
	var benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Time key generation, encryption and decryption",
		RunE:  handler.BenchCmd,
	}
	benchCmd.Flags().Int("key-size", config.DefaultKeySize, "Size of each prime in bits")
	benchCmd.Flags().Int("message-length", 1000, "Length of the random message")
	rootCmd.AddCommand(benchCmd)
}

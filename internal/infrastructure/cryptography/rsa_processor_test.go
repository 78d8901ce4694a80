//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/codec"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestKeySize256 = 256
)

// p = 61, q = 53
func textbookKeys() (*cryptoalg.PublicKey, *cryptoalg.PrivateKey) {
	n := big.NewInt(3233)
	return &cryptoalg.PublicKey{N: n, E: big.NewInt(cryptoalg.PublicExponent)},
		&cryptoalg.PrivateKey{N: n, D: big.NewInt(2753)}
}

func setupRSAProcessor(t *testing.T, seed uint64, encoding string) *rsaProcessor {
	t.Helper()
	testLogger := testutil.SetupTestLogger(t)

	settings := config.NewRSASettings()
	settings.CiphertextEncoding = encoding

	processor, err := NewRSAProcessor(settings, testutil.NewDeterministicReader(seed), testLogger)
	require.NoError(t, err)
	return processor.(*rsaProcessor)
}

func assertValidKeyPair(t *testing.T, publicKey *cryptoalg.PublicKey, privateKey *cryptoalg.PrivateKey) {
	t.Helper()

	require.NotNil(t, publicKey)
	require.NotNil(t, privateKey)
	assert.Equal(t, 0, publicKey.N.Cmp(privateKey.N))
	assert.Equal(t, int64(cryptoalg.PublicExponent), publicKey.E.Int64())

	// e*d ≡ 1 (mod φ) implies m^(e*d) ≡ m (mod n) for every m.
	for _, m := range []int64{0, 1, 2, 3, 42, 65} {
		message := big.NewInt(m)
		c := new(big.Int).Exp(message, publicKey.E, publicKey.N)
		back := new(big.Int).Exp(c, privateKey.D, privateKey.N)
		assert.Equal(t, 0, new(big.Int).Mod(message, publicKey.N).Cmp(back), "m = %d", m)
	}
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t, 7, config.CiphertextEncodingBase64)

	t.Run("GenerateKeys", func(t *testing.T) {
		publicKey, privateKey, err := processor.GenerateKeys(TestKeySize256)
		require.NoError(t, err)
		assertValidKeyPair(t, publicKey, privateKey)

		bits := publicKey.ModulusBits()
		assert.True(t, bits == 2*TestKeySize256 || bits == 2*TestKeySize256-1, "modulus has %d bits", bits)
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		publicKey, privateKey, err := processor.GenerateKeys(TestKeySize256)
		require.NoError(t, err)

		plainText := "This is a secret message"
		encrypted, err := processor.Encrypt(plainText, publicKey)
		require.NoError(t, err)
		assert.NotEqual(t, plainText, encrypted)

		decrypted, err := processor.Decrypt(encrypted, privateKey)
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		privFile := filepath.Join(tmpDir, "id_rsa")
		pubFile := filepath.Join(tmpDir, "id_rsa.pub")

		publicKey, privateKey, err := processor.GenerateKeys(TestKeySize256)
		require.NoError(t, err)

		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))
		require.NoError(t, processor.SavePublicKeyToFile(publicKey, pubFile))

		content, err := os.ReadFile(pubFile)
		require.NoError(t, err)
		assert.Equal(t, codec.EncodePublicKey(publicKey)+"\n", string(content))

		info, err := os.Stat(privFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		readPrivateKey, err := processor.ReadPrivateKey(privFile)
		require.NoError(t, err)
		assert.Equal(t, 0, privateKey.D.Cmp(readPrivateKey.D))
		assert.Equal(t, 0, privateKey.N.Cmp(readPrivateKey.N))

		readPublicKey, err := processor.ReadPublicKey(pubFile)
		require.NoError(t, err)
		assert.Equal(t, 0, publicKey.E.Cmp(readPublicKey.E))
		assert.Equal(t, 0, publicKey.N.Cmp(readPublicKey.N))
	})
}

func TestGenerateKeys_SmallPrimes(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)

	for i := 0; i < 20; i++ {
		publicKey, privateKey, err := processor.GenerateKeys(cryptoalg.MinPrimeBits)
		require.NoError(t, err)
		assertValidKeyPair(t, publicKey, privateKey)

		encrypted, err := processor.Encrypt("A", publicKey)
		require.NoError(t, err)
		decrypted, err := processor.Decrypt(encrypted, privateKey)
		require.NoError(t, err)
		assert.Equal(t, "A", decrypted)
	}
}

func TestGenerateKeys_DistinctPrimes(t *testing.T) {
	processor := setupRSAProcessor(t, 3, config.CiphertextEncodingBase64)

	// Only 23 primes have 8 bits, so equal draws happen many times here.
	for i := 0; i < 200; i++ {
		publicKey, _, err := processor.GenerateKeys(cryptoalg.MinPrimeBits)
		require.NoError(t, err)

		root := new(big.Int).Sqrt(publicKey.N)
		assert.NotEqual(t, 0, root.Mul(root, root).Cmp(publicKey.N), "n = %s is a square", publicKey.N)
	}
}

func TestGenerateKeys_Deterministic(t *testing.T) {
	first, _, err := setupRSAProcessor(t, 99, config.CiphertextEncodingBase64).GenerateKeys(64)
	require.NoError(t, err)
	second, _, err := setupRSAProcessor(t, 99, config.CiphertextEncodingBase64).GenerateKeys(64)
	require.NoError(t, err)

	assert.Equal(t, 0, first.N.Cmp(second.N))
}

func TestGenerateKeys_Errors(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)

	_, _, err := processor.GenerateKeys(cryptoalg.MinPrimeBits - 1)
	assert.Error(t, err)

	failing, err := NewRSAProcessor(nil, iotest.ErrReader(errors.New("entropy exhausted")), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	_, _, err = failing.GenerateKeys(64)
	assert.ErrorContains(t, err, "entropy exhausted")
}

// fatalRecorder records Fatal calls instead of exiting.
type fatalRecorder struct {
	logger.Logger
	messages []string
}

func (l *fatalRecorder) Fatal(args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprint(args...))
}

func TestCheckInverse(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)
	recorder := &fatalRecorder{Logger: processor.logger}
	processor.logger = recorder
	e, phi := big.NewInt(cryptoalg.PublicExponent), big.NewInt(3120)

	processor.checkInverse(e, big.NewInt(2753), phi)
	assert.Empty(t, recorder.messages)

	assert.NotPanics(t, func() { processor.checkInverse(e, big.NewInt(2754), phi) })
	require.Len(t, recorder.messages, 1)
	assert.Contains(t, recorder.messages[0], "self-check failed")
}

func TestTextbookKey_AllMessages(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)
	publicKey, privateKey := textbookKeys()

	c, err := processor.EncryptInt(big.NewInt(65), publicKey)
	require.NoError(t, err)
	assert.Equal(t, int64(2790), c.Int64())

	for m := int64(0); m < 3233; m++ {
		c, err := processor.EncryptInt(big.NewInt(m), publicKey)
		require.NoError(t, err)
		back, err := processor.DecryptInt(c, privateKey)
		require.NoError(t, err)
		require.Equal(t, m, back.Int64())
	}
}

func TestMessageWrapsModulus(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)
	publicKey, privateKey := textbookKeys()

	// "AB" is 16706, which is 541 = 0x021d modulo 3233.
	encrypted, err := processor.Encrypt("AB", publicKey)
	require.NoError(t, err)
	decrypted, err := processor.Decrypt(encrypted, privateKey)
	require.NoError(t, err)
	assert.Equal(t, "\x02\x1d", decrypted)

	c, err := processor.EncryptInt(big.NewInt(3233+65), publicKey)
	require.NoError(t, err)
	back, err := processor.DecryptInt(c, privateKey)
	require.NoError(t, err)
	assert.Equal(t, int64(65), back.Int64())
}

func TestDecrypt_DecodingErrors(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)
	publicKey, privateKey := textbookKeys()

	_, err := processor.Decrypt("not*base64", privateKey)
	var decodingErr *cryptoalg.DecodingError
	require.True(t, errors.As(err, &decodingErr))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidBase64)

	c, err := processor.EncryptInt(big.NewInt(0xff), publicKey)
	require.NoError(t, err)
	_, err = processor.Decrypt(codec.EncodeBase64(c), privateKey)
	require.True(t, errors.As(err, &decodingErr))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidUTF8)
}

func TestRawEncoding(t *testing.T) {
	processor := setupRSAProcessor(t, 3, config.CiphertextEncodingRaw)

	publicKey, privateKey, err := processor.GenerateKeys(128)
	require.NoError(t, err)

	encrypted, err := processor.Encrypt("raw bytes", publicKey)
	require.NoError(t, err)

	c, err := processor.EncryptInt(codec.BytesToInt([]byte("raw bytes")), publicKey)
	require.NoError(t, err)
	assert.Equal(t, string(c.Bytes()), encrypted)

	decrypted, err := processor.Decrypt(encrypted, privateKey)
	require.NoError(t, err)
	assert.Equal(t, "raw bytes", decrypted)
}

func TestNilKeys(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)

	_, err := processor.Encrypt("msg", nil)
	assert.Error(t, err)
	_, err = processor.Decrypt("AQ==", nil)
	assert.Error(t, err)
	_, err = processor.EncryptInt(big.NewInt(1), &cryptoalg.PublicKey{})
	assert.Error(t, err)

	dir := t.TempDir()
	assert.Error(t, processor.SavePrivateKeyToFile(nil, filepath.Join(dir, "id_rsa")))
	assert.Error(t, processor.SavePublicKeyToFile(nil, filepath.Join(dir, "id_rsa.pub")))
}

func TestReadKeys_InvalidFiles(t *testing.T) {
	processor := setupRSAProcessor(t, 1, config.CiphertextEncodingBase64)

	_, err := processor.ReadPrivateKey(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	malformed := testutil.CreateTestFile(t, "id_rsa.pub", []byte("DKE=AQAB"))
	_, err = processor.ReadPublicKey(malformed)
	assert.ErrorIs(t, err, cryptoalg.ErrMalformedKey)
}

func TestNewRSAProcessor_InvalidSettings(t *testing.T) {
	testLogger := testutil.SetupTestLogger(t)

	_, err := NewRSAProcessor(&config.RSASettings{KeySize: 1024, CiphertextEncoding: "hex"}, nil, testLogger)
	assert.Error(t, err)

	processor, err := NewRSAProcessor(nil, nil, testLogger)
	require.NoError(t, err)
	assert.NotNil(t, processor)
}

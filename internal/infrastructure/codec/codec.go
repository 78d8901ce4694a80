// Package codec converts between byte strings, big integers and the base64
// text used for keys and ciphertexts.
//
// Integers are encoded as unsigned big-endian bytes without leading zeros, so
// a message whose first byte is 0x00 loses that byte on the way back.
package codec

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// Encoding selects how ciphertext integers are rendered as text.
type Encoding string

const (
	// EncodingBase64 renders ciphertexts as standard padded base64.
	EncodingBase64 Encoding = "base64"
	// EncodingRaw keeps the big-endian ciphertext bytes as they are.
	EncodingRaw Encoding = "raw"
)

// ParseEncoding returns the Encoding named s.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case EncodingBase64, EncodingRaw:
		return Encoding(s), nil
	default:
		return "", fmt.Errorf("unsupported ciphertext encoding: %q", s)
	}
}

// BytesToInt interprets b as an unsigned big-endian integer.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes returns the minimal big-endian bytes of n. Zero yields no bytes.
func IntToBytes(n *big.Int) []byte {
	return n.Bytes()
}

// EncodeBase64 returns the base64 text of n's big-endian bytes.
func EncodeBase64(n *big.Int) string {
	return base64.StdEncoding.EncodeToString(n.Bytes())
}

// DecodeBase64 parses text produced by EncodeBase64.
func DecodeBase64(s string) (*big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &cryptoalg.DecodingError{Op: "base64 integer", Err: fmt.Errorf("%w: %v", cryptoalg.ErrInvalidBase64, err)}
	}
	return BytesToInt(raw), nil
}

// IntToText converts n back into a string, failing when its bytes are not
// valid UTF-8.
func IntToText(n *big.Int) (string, error) {
	raw := n.Bytes()
	if !utf8.Valid(raw) {
		return "", &cryptoalg.DecodingError{Op: "plaintext", Err: cryptoalg.ErrInvalidUTF8}
	}
	return string(raw), nil
}

// EncodeCiphertext renders c in the given encoding.
func EncodeCiphertext(encoding Encoding, c *big.Int) string {
	if encoding == EncodingRaw {
		return string(c.Bytes())
	}
	return EncodeBase64(c)
}

// DecodeCiphertext parses text produced by EncodeCiphertext with the same
// encoding. Mixing encodings between the two calls breaks the round trip.
func DecodeCiphertext(encoding Encoding, s string) (*big.Int, error) {
	if encoding == EncodingRaw {
		return BytesToInt([]byte(s)), nil
	}

	c, err := DecodeBase64(strings.TrimSpace(s))
	if err != nil {
		return nil, &cryptoalg.DecodingError{Op: "ciphertext", Err: err}
	}
	return c, nil
}

// EncodeKey serializes a key as "<base64 modulus>-<base64 exponent>".
func EncodeKey(modulus, exponent *big.Int) string {
	return EncodeBase64(modulus) + cryptoalg.KeySeparator + EncodeBase64(exponent)
}

// DecodeKey parses text produced by EncodeKey. Surrounding whitespace, such as
// a trailing newline in a key file, is ignored.
func DecodeKey(s string) (modulus, exponent *big.Int, err error) {
	parts := strings.Split(strings.TrimSpace(s), cryptoalg.KeySeparator)
	if len(parts) != 2 {
		return nil, nil, &cryptoalg.DecodingError{
			Op:  "key",
			Err: fmt.Errorf("%w: expected 2 parts separated by %q, got %d", cryptoalg.ErrMalformedKey, cryptoalg.KeySeparator, len(parts)),
		}
	}

	modulus, err = DecodeBase64(parts[0])
	if err != nil {
		return nil, nil, &cryptoalg.DecodingError{Op: "key modulus", Err: err}
	}
	exponent, err = DecodeBase64(parts[1])
	if err != nil {
		return nil, nil, &cryptoalg.DecodingError{Op: "key exponent", Err: err}
	}
	if modulus.Sign() == 0 {
		return nil, nil, &cryptoalg.DecodingError{Op: "key modulus", Err: fmt.Errorf("%w: modulus is zero", cryptoalg.ErrMalformedKey)}
	}

	return modulus, exponent, nil
}

// EncodePublicKey serializes a public key.
func EncodePublicKey(key *cryptoalg.PublicKey) string {
	return EncodeKey(key.N, key.E)
}

// EncodePrivateKey serializes a private key.
func EncodePrivateKey(key *cryptoalg.PrivateKey) string {
	return EncodeKey(key.N, key.D)
}

// DecodePublicKey parses a serialized public key.
func DecodePublicKey(s string) (*cryptoalg.PublicKey, error) {
	n, e, err := DecodeKey(s)
	if err != nil {
		return nil, err
	}
	return &cryptoalg.PublicKey{N: n, E: e}, nil
}

// DecodePrivateKey parses a serialized private key.
func DecodePrivateKey(s string) (*cryptoalg.PrivateKey, error) {
	n, d, err := DecodeKey(s)
	if err != nil {
		return nil, err
	}
	return &cryptoalg.PrivateKey{N: n, D: d}, nil
}

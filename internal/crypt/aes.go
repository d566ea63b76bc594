package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// KeySize is the AES-128 key length in bytes. Longer keys are truncated and
// shorter ones zero padded.
const KeySize = 16

var (
	// ErrInvalidCiphertext is returned when decryption input is not a whole
	// number of blocks.
	ErrInvalidCiphertext = errors.New("ciphertext is not a multiple of the block size")
	// ErrInvalidPadding is returned when the decrypted PKCS#7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid PKCS#7 padding")
)

// Encrypt encrypts plaintext with AES-128-CBC and PKCS#7 padding.
// The key and iv are used as raw bytes and fitted to 16 bytes.
func Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(fit(key, KeySize))
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))

	cipher.NewCBCEncrypter(block, fit(iv, aes.BlockSize)).CryptBlocks(out, padded)

	return out, nil
}

// Decrypt reverses Encrypt.
func Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidCiphertext
	}

	block, err := aes.NewCipher(fit(key, KeySize))
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, fit(iv, aes.BlockSize)).CryptBlocks(out, ciphertext)

	return unpad(out, aes.BlockSize)
}

// EncryptString encrypts the UTF-8 bytes of value using the UTF-8 bytes of
// key and iv.
func EncryptString(value, key, iv string) ([]byte, error) {
	return Encrypt([]byte(value), []byte(key), []byte(iv))
}

func fit(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)

	return out
}

func pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize

	return append(bytes.Clone(b), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ErrInvalidPadding
	}

	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrInvalidPadding
		}
	}

	return b[:len(b)-n], nil
}

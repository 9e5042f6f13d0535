// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// sealer is the private implementation of [Sealer].
type sealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealer constructs a [Sealer] keyed by passphrase. An empty passphrase
// yields a pass-through sealer.
//
// Argon2id parameters follow OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer(passphrase string) Sealer {
	return &sealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (s *sealer) Enabled() bool {
	return len(s.passphrase) > 0
}

func (s *sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func (s *sealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [Sealer].
func (s *sealer) Seal(plain string) (string, error) {
	if !s.Enabled() {
		return plain, nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// salt || nonce || ciphertext
	blob := make([]byte, 0, saltSize+len(nonce)+len(plain)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plain), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *sealer) Open(sealed string) (string, error) {
	if !s.Enabled() {
		return sealed, nil
	}

	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrOpenFailed, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// A failure here almost always means a different passphrase.
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return string(plain), nil
}

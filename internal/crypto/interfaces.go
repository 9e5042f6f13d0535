// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects the persisted credential at rest.
//
// Scheme:
//
//	Salt        = random 16 bytes
//	Key         = Argon2id(passphrase, Salt)
//	Nonce, Ct   = AES-256-GCM(Key, plain)
//	Sealed      = base64(Salt ‖ Nonce ‖ Ct)
//
// A Sealer built without a passphrase passes values through unchanged.
type Sealer interface {
	// Seal encrypts plain and returns a printable blob.
	Seal(plain string) (string, error)

	// Open reverses Seal. It returns ErrOpenFailed when the blob is
	// malformed or the passphrase does not match.
	Open(sealed string) (string, error)

	// Enabled reports whether values are actually encrypted.
	Enabled() bool
}

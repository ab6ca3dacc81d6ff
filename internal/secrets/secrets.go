// Package secrets encrypts external-service credentials before they are
// stored, so tokens never sit in the database in plaintext.
package secrets

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Encrypt encrypts and signs a plaintext with the given base64 fernet key.
func Encrypt(plaintext, key string) (string, error) {
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return "", fmt.Errorf("failed to decode fernet key: %w", err)
	}

	token, err := fernet.EncryptAndSign([]byte(plaintext), k)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt secret: %w", err)
	}

	return string(token), nil
}

// Decrypt verifies and decrypts a ciphertext produced by Encrypt. A TTL of
// zero means stored tokens never expire.
func Decrypt(ciphertext, key string) (string, error) {
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return "", fmt.Errorf("failed to decode fernet key: %w", err)
	}

	plaintext := fernet.VerifyAndDecrypt([]byte(ciphertext), 0, []*fernet.Key{k})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt secret: invalid token or key")
	}

	return string(plaintext), nil
}

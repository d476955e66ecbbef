package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrBadCiphertext = errors.New("malformed email ciphertext")

// EmailCipher encrypts email addresses at rest with AES-256-GCM. Because GCM
// output is non-deterministic, a separate HMAC fingerprint of the lowercased
// address is stored alongside for equality lookups.
type EmailCipher struct {
	aead cipher.AEAD
	mac  []byte
}

// NewEmailCipher derives the AES key and the fingerprint MAC key from a single
// secret. An empty secret is rejected so a misconfigured deployment fails at
// startup rather than storing plaintext.
func NewEmailCipher(secret string) (*EmailCipher, error) {
	if secret == "" {
		return nil, errors.New("email encryption key not configured")
	}
	key := sha256.Sum256([]byte("enc:" + secret))
	macKey := sha256.Sum256([]byte("mac:" + secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &EmailCipher{aead: aead, mac: macKey[:]}, nil
}

func (c *EmailCipher) Encrypt(email string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(email), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *EmailCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrBadCiphertext
	}
	if len(raw) < c.aead.NonceSize() {
		return "", ErrBadCiphertext
	}
	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrBadCiphertext
	}
	return string(plain), nil
}

// Fingerprint returns a deterministic digest of the address for lookups.
// Case-insensitive: addresses differing only in case collide on purpose.
func (c *EmailCipher) Fingerprint(email string) string {
	h := hmac.New(sha256.New, c.mac)
	h.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(h.Sum(nil))
}

package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
)

// Encryptor protects short secrets at rest using an age X25519 identity.
type Encryptor struct {
	identity  *age.X25519Identity
	recipient age.Recipient
}

// NewEncryptor creates a new encryptor from an age identity string.
// If no key is provided, generates a new one (for development).
func NewEncryptor(identityKey string) (*Encryptor, error) {
	var identity *age.X25519Identity
	var err error

	if identityKey == "" {
		identity, err = age.GenerateX25519Identity()
		if err != nil {
			return nil, fmt.Errorf("generating identity: %w", err)
		}
	} else {
		identity, err = age.ParseX25519Identity(identityKey)
		if err != nil {
			return nil, fmt.Errorf("parsing identity: %w", err)
		}
	}

	return &Encryptor{
		identity:  identity,
		recipient: identity.Recipient(),
	}, nil
}

// GenerateKey generates a new age identity key pair.
func GenerateKey() (identityKey string, publicKey string, err error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return "", "", err
	}
	return identity.String(), identity.Recipient().String(), nil
}

// EncryptString encrypts a plaintext string and returns it base64-encoded
// so it can be stored in a text column.
func (e *Encryptor) EncryptString(plaintext string) (string, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, e.recipient)
	if err != nil {
		return "", fmt.Errorf("creating encryptor: %w", err)
	}
	if _, err := io.WriteString(w, plaintext); err != nil {
		return "", fmt.Errorf("encrypting: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("closing encryptor: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecryptString reverses EncryptString.
func (e *Encryptor) DecryptString(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(raw), e.identity)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", fmt.Errorf("reading plaintext: %w", err)
	}

	return sb.String(), nil
}

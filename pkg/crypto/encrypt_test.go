package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewEncryptor("")
	require.NoError(t, err)

	sealed, err := enc.EncryptString("042137")
	require.NoError(t, err)
	assert.NotEqual(t, "042137", sealed)

	plain, err := enc.DecryptString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "042137", plain)
}

func TestEncryptor_CiphertextVaries(t *testing.T) {
	enc, err := NewEncryptor("")
	require.NoError(t, err)

	a, err := enc.EncryptString("042137")
	require.NoError(t, err)
	b, err := enc.EncryptString("042137")
	require.NoError(t, err)

	// age uses a fresh file key per encryption
	assert.NotEqual(t, a, b)
}

func TestEncryptor_ParsedIdentity(t *testing.T) {
	identityKey, _, err := GenerateKey()
	require.NoError(t, err)

	enc, err := NewEncryptor(identityKey)
	require.NoError(t, err)

	sealed, err := enc.EncryptString("secret")
	require.NoError(t, err)

	// a second encryptor from the same key can decrypt
	enc2, err := NewEncryptor(identityKey)
	require.NoError(t, err)
	plain, err := enc2.DecryptString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "secret", plain)
}

func TestEncryptor_WrongIdentity(t *testing.T) {
	enc, err := NewEncryptor("")
	require.NoError(t, err)
	other, err := NewEncryptor("")
	require.NoError(t, err)

	sealed, err := enc.EncryptString("secret")
	require.NoError(t, err)

	_, err = other.DecryptString(sealed)
	assert.Error(t, err)
}

func TestEncryptor_BadInput(t *testing.T) {
	enc, err := NewEncryptor("")
	require.NoError(t, err)

	_, err = enc.DecryptString("not base64!!!")
	assert.Error(t, err)

	_, err = enc.DecryptString("aGVsbG8=")
	assert.Error(t, err)
}

func TestNewEncryptor_InvalidKey(t *testing.T) {
	_, err := NewEncryptor("AGE-SECRET-KEY-NOT-A-REAL-KEY")
	assert.Error(t, err)
}

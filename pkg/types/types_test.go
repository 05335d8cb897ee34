package types

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryPubkeyFromBase58_RoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		var raw [PubkeyLength]byte
		_, err := rand.Read(raw[:])
		require.NoError(t, err)

		p, err := TryPubkeyFromBase58(base58.Encode(raw[:]))
		require.NoError(t, err)
		assert.Equal(t, raw[:], p[:])

		again, err := TryPubkeyFromBase58(p.String())
		require.NoError(t, err)
		assert.True(t, p.Equals(again))
	}
}

func TestTryPubkeyFromBase58_SystemProgram(t *testing.T) {
	p, err := TryPubkeyFromBase58("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, Pubkey{}, p)

	p, err = TryPubkeyFromBase58("11111111111111111111111111111112")
	require.NoError(t, err)
	assert.Equal(t, byte(1), p[31])
}

func TestTryPubkeyFromBase58_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bad alphabet", "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl", ErrInvalidBase58},
		{"too short", base58.Encode(make([]byte, 31)), ErrInvalidLength},
		{"too long", base58.Encode(append([]byte{1}, make([]byte, 32)...)), ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TryPubkeyFromBase58(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPubkeyFromBase58_Panics(t *testing.T) {
	assert.Panics(t, func() { PubkeyFromBase58("not-a-key") })
}

func TestTrySecretKeyFromBase58(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	k, err := TrySecretKeyFromBase58(base58.Encode(priv))
	require.NoError(t, err)
	assert.Equal(t, []byte(pub), k.Pubkey().ToCommon().Bytes())
	assert.Equal(t, priv.Seed(), k.Seed())
	assert.Equal(t, base58.Encode(priv), k.String())
}

func TestTrySecretKeyFromBase58_Invalid(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	mismatched := append([]byte(nil), priv...)
	mismatched[63] ^= 0xff

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bad alphabet", "0OIl", ErrInvalidBase58},
		{"63 bytes", base58.Encode(priv[:63]), ErrInvalidLength},
		{"65 bytes", base58.Encode(append(append([]byte(nil), priv...), 7)), ErrInvalidLength},
		{"32 bytes", base58.Encode(priv[:32]), ErrInvalidLength},
		{"mismatched public half", base58.Encode(mismatched), ErrKeyMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := TrySecretKeyFromBase58(tt.input)
				assert.ErrorIs(t, err, tt.want)
			})
		})
	}
}

func TestTrySignatureFromBase64(t *testing.T) {
	raw := make([]byte, SignatureLength)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	sig, err := TrySignatureFromBase64(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, sig[:])
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), sig.String())

	_, err = TrySignatureFromBase64(base64.StdEncoding.EncodeToString(raw[:63]))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = TrySignatureFromBase64("***not base64***")
	assert.ErrorIs(t, err, ErrInvalidBase64)
}

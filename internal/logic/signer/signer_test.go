package signer

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sol-instruction-api/pkg/types"
)

func TestNewKeypair_Distinct(t *testing.T) {
	a, err := NewKeypair()
	require.NoError(t, err)
	b, err := NewKeypair()
	require.NoError(t, err)

	assert.NotEqual(t, a.Pubkey, b.Pubkey)
	assert.NotEqual(t, a.Secret, b.Secret)
	assert.Equal(t, a.Pubkey, a.Secret.Pubkey())
}

func TestNewKeypair_SecretRoundTrip(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	parsed, err := types.TrySecretKeyFromBase58(kp.Secret.String())
	require.NoError(t, err)
	assert.Equal(t, kp.Secret, parsed)

	pub, err := types.TryPubkeyFromBase58(kp.Pubkey.String())
	require.NoError(t, err)
	assert.Equal(t, kp.Pubkey, pub)
}

func TestSignVerify(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	msg := []byte("Hello, Solana!")
	sig, signer, err := Sign(kp.Secret, msg)
	require.NoError(t, err)
	assert.Equal(t, kp.Pubkey, signer)
	assert.True(t, Verify(kp.Pubkey, sig, msg))

	// ed25519 签名是确定性的
	again, _, err := Sign(kp.Secret, msg)
	require.NoError(t, err)
	assert.Equal(t, sig, again)
}

func TestSignVerify_EmptyAndUnicodeMessages(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	for _, msg := range []string{"", "签名测试 ✓", "\x00\x01\x02"} {
		sig, _, err := Sign(kp.Secret, []byte(msg))
		require.NoError(t, err)
		assert.True(t, Verify(kp.Pubkey, sig, []byte(msg)), "msg=%q", msg)
	}
}

func TestVerify_BitFlipFails(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	msg := []byte("transfer 1000 lamports")
	sig, _, err := Sign(kp.Secret, msg)
	require.NoError(t, err)

	for i := 0; i < types.SignatureLength*8; i++ {
		flipped := sig
		flipped[i/8] ^= 1 << (i % 8)
		assert.False(t, Verify(kp.Pubkey, flipped, msg), "bit %d", i)
	}
}

func TestVerify_WrongMessageOrKey(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)
	other, err := NewKeypair()
	require.NoError(t, err)

	sig, _, err := Sign(kp.Secret, []byte("a"))
	require.NoError(t, err)

	assert.False(t, Verify(kp.Pubkey, sig, []byte("b")))
	assert.False(t, Verify(other.Pubkey, sig, []byte("a")))
}

func TestSign_MatchesStdlib(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	msg := []byte("interop")
	sig, _, err := Sign(kp.Secret, msg)
	require.NoError(t, err)
	assert.Equal(t, ed25519.Sign(kp.Secret.PrivateKey(), msg), sig[:])
}

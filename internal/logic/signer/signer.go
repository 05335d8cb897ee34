package signer

import (
	"crypto/ed25519"
	"fmt"

	sdktypes "github.com/blocto/solana-go-sdk/types"

	"sol-instruction-api/pkg/types"
)

// Keypair 新生成的密钥对，Secret 为 seed + 公钥共 64 字节
type Keypair struct {
	Pubkey types.Pubkey
	Secret types.SecretKey
}

// NewKeypair 每次调用都从 crypto/rand 取新的随机 seed，不复用任何 PRNG 状态
func NewKeypair() (Keypair, error) {
	acc := sdktypes.NewAccount()
	secret, err := types.SecretKeyFromBytes(acc.PrivateKey)
	if err != nil {
		return Keypair{}, fmt.Errorf("generated key is inconsistent: %w", err)
	}
	return Keypair{
		Pubkey: types.PubkeyFromCommon(acc.PublicKey),
		Secret: secret,
	}, nil
}

// Sign 对消息原始字节做 ed25519 签名，返回签名与签名者公钥
func Sign(secret types.SecretKey, message []byte) (types.Signature, types.Pubkey, error) {
	acc, err := sdktypes.AccountFromBytes(secret[:])
	if err != nil {
		return types.Signature{}, types.Pubkey{}, err
	}
	sig, err := types.SignatureFromBytes(acc.Sign(message))
	if err != nil {
		return types.Signature{}, types.Pubkey{}, err
	}
	return sig, types.PubkeyFromCommon(acc.PublicKey), nil
}

// Verify 校验签名是否由 pubkey 对 message 原始字节签出，不做任何哈希或规范化
func Verify(pubkey types.Pubkey, sig types.Signature, message []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pubkey[:]), message, sig[:])
}

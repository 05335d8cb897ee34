package types

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

const SecretKeyLength = ed25519.PrivateKeySize

var ErrKeyMismatch = errors.New("embedded public key does not match seed")

// SecretKey 64 字节签名私钥：前 32 字节为 seed，后 32 字节为对应公钥。
type SecretKey [SecretKeyLength]byte

// String 返回 base58 文本，仅用于生成密钥后的响应，不要写入日志。
func (k SecretKey) String() string {
	return base58.Encode(k[:])
}

func (k SecretKey) Seed() []byte {
	return k[:ed25519.SeedSize]
}

func (k SecretKey) Pubkey() Pubkey {
	var p Pubkey
	copy(p[:], k[ed25519.SeedSize:])
	return p
}

func (k SecretKey) PrivateKey() ed25519.PrivateKey {
	return ed25519.PrivateKey(k[:])
}

// TrySecretKeyFromBase58 解析 base58 私钥。
// 字母表错误返回 ErrInvalidBase58；长度不为 64 或 seed 推导出的公钥与后 32 字节不一致时返回 ErrInvalidLength / ErrKeyMismatch。
func TrySecretKeyFromBase58(s string) (SecretKey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return SecretKey{}, fmt.Errorf("%w: secret: %v", ErrInvalidBase58, err)
	}
	return SecretKeyFromBytes(data)
}

func SecretKeyFromBytes(data []byte) (SecretKey, error) {
	if len(data) != SecretKeyLength {
		return SecretKey{}, fmt.Errorf("%w: secret got %d, want %d", ErrInvalidLength, len(data), SecretKeyLength)
	}
	derived := ed25519.NewKeyFromSeed(data[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], data[ed25519.SeedSize:]) {
		return SecretKey{}, ErrKeyMismatch
	}
	var k SecretKey
	copy(k[:], data)
	return k, nil
}

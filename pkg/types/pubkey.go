package types

import (
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
)

const PubkeyLength = 32

var (
	ErrInvalidBase58 = errors.New("invalid base58 string")
	ErrInvalidBase64 = errors.New("invalid base64 string")
	ErrInvalidLength = errors.New("invalid length")
)

// Pubkey 32 字节的 Solana 账户地址，文本形式为 base58。
type Pubkey [PubkeyLength]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Equals(other Pubkey) bool {
	return p == other
}

// ToCommon 转换为 SDK 的 PublicKey，底层同为 [32]byte。
func (p Pubkey) ToCommon() common.PublicKey {
	return common.PublicKey(p)
}

func PubkeyFromCommon(k common.PublicKey) Pubkey {
	return Pubkey(k)
}

// TryPubkeyFromBase58 解析 base58 字符串为 Pubkey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (Pubkey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("%w: pubkey %q: %v", ErrInvalidBase58, s, err)
	}
	if len(data) != PubkeyLength {
		return Pubkey{}, fmt.Errorf("%w: pubkey got %d, want %d, input=%q", ErrInvalidLength, len(data), PubkeyLength, s)
	}
	var p Pubkey
	copy(p[:], data)
	return p, nil
}

// PubkeyFromBase58 仅用于常量地址初始化，解析失败直接 panic
func PubkeyFromBase58(s string) Pubkey {
	p, err := TryPubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}

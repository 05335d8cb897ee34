package types

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
)

const SignatureLength = ed25519.SignatureSize

// Signature 64 字节 ed25519 签名，传输时使用标准 base64（带 padding）。
type Signature [SignatureLength]byte

func (s Signature) String() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

func SignatureFromBytes(data []byte) (Signature, error) {
	if len(data) != SignatureLength {
		return Signature{}, fmt.Errorf("%w: signature got %d, want %d", ErrInvalidLength, len(data), SignatureLength)
	}
	var sig Signature
	copy(sig[:], data)
	return sig, nil
}

// TrySignatureFromBase64 解析 base64 签名，字母表错误返回 ErrInvalidBase64，长度错误返回 ErrInvalidLength
func TrySignatureFromBase64(s string) (Signature, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: signature: %v", ErrInvalidBase64, err)
	}
	return SignatureFromBytes(data)
}

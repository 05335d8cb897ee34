package domain

import "fmt"

// TokenAccountMode /send/token 的 token 账户解析方式，每个部署只选一种
type TokenAccountMode string

const (
	TokenAccountLiteral    TokenAccountMode = "literal"    // 透传调用方给出的账户地址
	TokenAccountAssociated TokenAccountMode = "associated" // 由 owner/destination + mint 推导 ATA
)

func ParseTokenAccountMode(s string) (TokenAccountMode, error) {
	switch TokenAccountMode(s) {
	case "", TokenAccountLiteral:
		return TokenAccountLiteral, nil
	case TokenAccountAssociated:
		return TokenAccountAssociated, nil
	default:
		return "", fmt.Errorf("unknown token account mode %q", s)
	}
}

// Policy 部署级别的请求校验策略
type Policy struct {
	RejectZeroAmount bool
	TokenAccountMode TokenAccountMode
}

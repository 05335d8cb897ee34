package consts

import (
	"sol-instruction-api/pkg/types"
)

// 公钥形式的地址常量（types.Pubkey），用于构造结果比对。
var (
	SystemProgram          types.Pubkey
	TokenProgram           types.Pubkey
	AssociatedTokenProgram types.Pubkey
	SysvarRent             types.Pubkey
)

// init 自动将 base58 字符串地址转换为 types.Pubkey
func init() {
	SystemProgram = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram = types.PubkeyFromBase58(TokenProgramStr)
	AssociatedTokenProgram = types.PubkeyFromBase58(AssociatedTokenProgramStr)
	SysvarRent = types.PubkeyFromBase58(SysvarRentStr)
}

package domain

import (
	"encoding/base64"

	"sol-instruction-api/pkg/types"
)

// AccountMeta 指令涉及的单个账户及其签名/可写标记，顺序由目标程序约定。
type AccountMeta struct {
	PubKey     types.Pubkey
	IsSigner   bool
	IsWritable bool
}

// Instruction 表示一条待签名的链上指令描述，只描述不执行。
type Instruction struct {
	ProgramID types.Pubkey  // 所调用的程序地址（例如 TokenProgram）
	Accounts  []AccountMeta // 指令涉及的账户列表，保持程序约定顺序
	Data      []byte        // 指令数据（原始字节，对外输出时编码为 base64）
}

// DataBase64 返回指令数据的标准 base64 文本
func (ix Instruction) DataBase64() string {
	return base64.StdEncoding.EncodeToString(ix.Data)
}

// AccountAddresses 仅返回账户地址列表（send/sol 的响应格式）
func (ix Instruction) AccountAddresses() []string {
	addrs := make([]string, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		addrs = append(addrs, a.PubKey.String())
	}
	return addrs
}

package builder

import (
	"encoding/binary"

	"github.com/blocto/solana-go-sdk/program/system"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"

	"sol-instruction-api/internal/consts"
	"sol-instruction-api/internal/logic/domain"
)

const unknownInstruction = "unknown"

// InstructionName 根据程序地址与指令数据判别指令类型，用于日志与指标标签
func InstructionName(ix domain.Instruction) string {
	switch ix.ProgramID {
	case consts.TokenProgram:
		return tokenInstructionName(ix.Data)
	case consts.SystemProgram:
		return systemInstructionName(ix.Data)
	default:
		return unknownInstruction
	}
}

func tokenInstructionName(data []byte) string {
	if len(data) == 0 {
		return unknownInstruction
	}

	switch data[0] {
	case byte(sdktoken.InstructionInitializeMint):
		return "initialize_mint"
	case byte(sdktoken.InstructionMintTo):
		return "mint_to"
	case byte(sdktoken.InstructionTransfer):
		return "transfer"
	default:
		// 本服务不会构造其它 Token 指令
		return unknownInstruction
	}
}

// system 程序的指令序号为 u32 小端
func systemInstructionName(data []byte) string {
	if len(data) < 4 {
		return unknownInstruction
	}

	switch binary.LittleEndian.Uint32(data[:4]) {
	case uint32(system.InstructionTransfer):
		return "system_transfer"
	default:
		return unknownInstruction
	}
}

package builder

import (
	"fmt"

	sdktypes "github.com/blocto/solana-go-sdk/types"

	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/pkg/logger"
	"sol-instruction-api/pkg/types"
)

// fromSDK 将 SDK 指令转换为对外的指令描述
func fromSDK(ix sdktypes.Instruction) domain.Instruction {
	accounts := make([]domain.AccountMeta, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, domain.AccountMeta{
			PubKey:     types.PubkeyFromCommon(a.PubKey),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	data := make([]byte, len(ix.Data))
	copy(data, ix.Data)
	return domain.Instruction{
		ProgramID: types.PubkeyFromCommon(ix.ProgramID),
		Accounts:  accounts,
		Data:      data,
	}
}

// safeBuild SDK 在序列化失败时会 panic，这里统一转换为 InstructionBuildFailed
func safeBuild(name, failMsg string, build func() (sdktypes.Instruction, error)) (ix domain.Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[builder][panic] %s: %v", name, r)
			ix = domain.Instruction{}
			err = domain.Wrap(domain.InstructionBuildFailed, failMsg, fmt.Errorf("panic: %v", r))
		}
	}()

	sdkIx, buildErr := build()
	if buildErr != nil {
		logger.Errorf("[builder] %s: %v", name, buildErr)
		return domain.Instruction{}, domain.Wrap(domain.InstructionBuildFailed, failMsg, buildErr)
	}
	return fromSDK(sdkIx), nil
}

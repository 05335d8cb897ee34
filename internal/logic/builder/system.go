package builder

import (
	"github.com/blocto/solana-go-sdk/program/system"

	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/pkg/types"
)

type TransferSolParams struct {
	From     types.Pubkey
	To       types.Pubkey
	Lamports uint64
}

// TransferSol 账户顺序: [from(signer, w), to(w)]；地址合法即可构造，不检查余额
func TransferSol(p TransferSolParams) domain.Instruction {
	return fromSDK(system.Transfer(system.TransferParam{
		From:   p.From.ToCommon(),
		To:     p.To.ToCommon(),
		Amount: p.Lamports,
	}))
}

package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/builder"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type MintTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMintTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MintTokenLogic {
	return &MintTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MintTokenLogic) MintToken(req *types.MintTokenReq) (*types.InstructionResp, error) {
	if err := requireFields(req.Mint, req.Destination, req.Authority); err != nil {
		return nil, err
	}
	if err := checkAmount(l.svcCtx.Policy, req.Amount, "Invalid amount"); err != nil {
		return nil, err
	}
	mint, err := parsePubkey(req.Mint, "Invalid mint pubkey")
	if err != nil {
		return nil, err
	}
	dest, err := parsePubkey(req.Destination, "Invalid destination pubkey")
	if err != nil {
		return nil, err
	}
	auth, err := parsePubkey(req.Authority, "Invalid authority pubkey")
	if err != nil {
		return nil, err
	}

	ix, err := builder.MintTo(builder.MintToParams{
		Mint:        mint,
		Destination: dest,
		Authority:   auth,
		Amount:      req.Amount,
	})
	if err != nil {
		l.Errorf("mint_to mint=%s dest=%s: %v", mint, dest, err)
		return nil, err
	}

	l.svcCtx.Metrics.ObserveInstruction(ix.ProgramID.String(), builder.InstructionName(ix))
	return toInstructionResp(ix), nil
}

package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/builder"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type SendTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendTokenLogic {
	return &SendTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendToken 账户解析方式由部署配置 Policy.TokenAccountMode 决定
func (l *SendTokenLogic) SendToken(req *types.SendTokenReq) (*types.InstructionResp, error) {
	if err := requireFields(req.Destination, req.Mint, req.Owner); err != nil {
		return nil, err
	}
	if err := checkAmount(l.svcCtx.Policy, req.Amount, "Invalid amount"); err != nil {
		return nil, err
	}
	dest, err := parsePubkey(req.Destination, "Invalid destination pubkey")
	if err != nil {
		return nil, err
	}
	mint, err := parsePubkey(req.Mint, "Invalid mint pubkey")
	if err != nil {
		return nil, err
	}
	owner, err := parsePubkey(req.Owner, "Invalid owner pubkey")
	if err != nil {
		return nil, err
	}

	ix, err := builder.TransferToken(builder.TransferTokenParams{
		Destination: dest,
		Mint:        mint,
		Owner:       owner,
		Amount:      req.Amount,
	}, l.svcCtx.Policy.TokenAccountMode)
	if err != nil {
		l.Errorf("transfer mint=%s owner=%s mode=%s: %v", mint, owner, l.svcCtx.Policy.TokenAccountMode, err)
		return nil, err
	}

	l.svcCtx.Metrics.ObserveInstruction(ix.ProgramID.String(), builder.InstructionName(ix))
	return toInstructionResp(ix), nil
}

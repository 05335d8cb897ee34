package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/builder"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type SendSolLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendSolLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendSolLogic {
	return &SendSolLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendSol 地址解析成功后构造一定成功，不检查余额
func (l *SendSolLogic) SendSol(req *types.SendSolReq) (*types.SolTransferResp, error) {
	if err := requireFields(req.From, req.To); err != nil {
		return nil, err
	}
	if err := checkAmount(l.svcCtx.Policy, req.Lamports, "Invalid lamports amount"); err != nil {
		return nil, err
	}
	from, err := parsePubkey(req.From, "Invalid sender pubkey")
	if err != nil {
		return nil, err
	}
	to, err := parsePubkey(req.To, "Invalid recipient pubkey")
	if err != nil {
		return nil, err
	}

	ix := builder.TransferSol(builder.TransferSolParams{
		From:     from,
		To:       to,
		Lamports: req.Lamports,
	})

	l.svcCtx.Metrics.ObserveInstruction(ix.ProgramID.String(), builder.InstructionName(ix))
	return &types.SolTransferResp{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        ix.AccountAddresses(),
		InstructionData: ix.DataBase64(),
	}, nil
}

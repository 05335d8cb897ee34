package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/builder"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type CreateTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateTokenLogic {
	return &CreateTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateToken 构造 InitializeMint 指令；decimals 的 0~255 范围已在请求解码时校验
func (l *CreateTokenLogic) CreateToken(req *types.CreateTokenReq) (*types.InstructionResp, error) {
	if err := requireFields(req.MintAuthority, req.Mint); err != nil {
		return nil, err
	}
	mint, err := parsePubkey(req.Mint, "Invalid mint pubkey")
	if err != nil {
		return nil, err
	}
	mintAuthority, err := parsePubkey(req.MintAuthority, "Invalid mint authority pubkey")
	if err != nil {
		return nil, err
	}

	ix, err := builder.InitializeMint(builder.InitializeMintParams{
		Mint:          mint,
		MintAuthority: mintAuthority,
		Decimals:      req.Decimals,
	})
	if err != nil {
		l.Errorf("initialize_mint mint=%s: %v", mint, err)
		return nil, err
	}

	l.svcCtx.Metrics.ObserveInstruction(ix.ProgramID.String(), builder.InstructionName(ix))
	return toInstructionResp(ix), nil
}

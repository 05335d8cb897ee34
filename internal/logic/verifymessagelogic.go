package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/signer"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type VerifyMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVerifyMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerifyMessageLogic {
	return &VerifyMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// VerifyMessage 公钥和签名格式错误直接返回校验错误，不会当作 valid=false
func (l *VerifyMessageLogic) VerifyMessage(req *types.VerifyMessageReq) (*types.VerifyMessageResp, error) {
	if err := requireFields(req.Message, req.Signature, req.Pubkey); err != nil {
		return nil, err
	}
	pubkey, err := parsePubkey(req.Pubkey, "Invalid pubkey format")
	if err != nil {
		return nil, err
	}
	sig, err := parseSignature(req.Signature)
	if err != nil {
		return nil, err
	}

	return &types.VerifyMessageResp{
		Valid:   signer.Verify(pubkey, sig, []byte(req.Message)),
		Message: req.Message,
		Pubkey:  req.Pubkey,
	}, nil
}

package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/internal/logic/signer"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type SignMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSignMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignMessageLogic {
	return &SignMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SignMessage 对 message 的 UTF-8 字节签名；私钥不会出现在日志中
func (l *SignMessageLogic) SignMessage(req *types.SignMessageReq) (*types.SignMessageResp, error) {
	if err := requireFields(req.Message, req.Secret); err != nil {
		return nil, err
	}
	secret, err := parseSecret(req.Secret)
	if err != nil {
		return nil, err
	}

	sig, pubkey, err := signer.Sign(secret, []byte(req.Message))
	if err != nil {
		l.Errorf("sign message: %v", err)
		return nil, domain.Wrap(domain.InvalidSecretKey, "Invalid secret key", err)
	}

	return &types.SignMessageResp{
		Signature: sig.String(),
		PublicKey: pubkey.String(),
		Message:   req.Message,
	}, nil
}

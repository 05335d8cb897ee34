package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/internal/logic/signer"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

type KeypairLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewKeypairLogic(ctx context.Context, svcCtx *svc.ServiceContext) *KeypairLogic {
	return &KeypairLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *KeypairLogic) Keypair() (*types.KeypairResp, error) {
	kp, err := signer.NewKeypair()
	if err != nil {
		l.Errorf("generate keypair: %v", err)
		return nil, domain.Wrap(domain.InternalError, "Failed to generate keypair", err)
	}
	return &types.KeypairResp{
		Pubkey: kp.Pubkey.String(),
		Secret: kp.Secret.String(),
	}, nil
}

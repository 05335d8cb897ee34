package builder

import (
	"github.com/blocto/solana-go-sdk/common"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"sol-instruction-api/internal/consts"
	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/pkg/types"
)

const (
	MsgInitializeMintFailed = "Failed to create initialize_mint instruction"
	MsgMintToFailed         = "Failed to create mint_to instruction"
	MsgTransferFailed       = "Failed to create transfer instruction"
)

// InitializeMintParams 创建 mint 的参数，不设置 freeze authority
type InitializeMintParams struct {
	Mint          types.Pubkey
	MintAuthority types.Pubkey
	Decimals      uint8
}

// InitializeMint 账户顺序: [mint(w), SysvarRent]
func InitializeMint(p InitializeMintParams) (domain.Instruction, error) {
	return safeBuild("initialize_mint", MsgInitializeMintFailed, func() (sdktypes.Instruction, error) {
		return sdktoken.InitializeMint(sdktoken.InitializeMintParam{
			Decimals:   p.Decimals,
			Mint:       p.Mint.ToCommon(),
			MintAuth:   p.MintAuthority.ToCommon(),
			FreezeAuth: nil,
		}), nil
	})
}

type MintToParams struct {
	Mint        types.Pubkey
	Destination types.Pubkey
	Authority   types.Pubkey
	Amount      uint64
}

// MintTo 账户顺序: [mint(w), destination(w), authority(signer)]，不使用多签
func MintTo(p MintToParams) (domain.Instruction, error) {
	return safeBuild("mint_to", MsgMintToFailed, func() (sdktypes.Instruction, error) {
		return sdktoken.MintTo(sdktoken.MintToParam{
			Mint:    p.Mint.ToCommon(),
			To:      p.Destination.ToCommon(),
			Auth:    p.Authority.ToCommon(),
			Signers: []common.PublicKey{},
			Amount:  p.Amount,
		}), nil
	})
}

// TransferTokenParams 字段与 /send/token 请求一致
type TransferTokenParams struct {
	Destination types.Pubkey
	Mint        types.Pubkey
	Owner       types.Pubkey
	Amount      uint64
}

// TransferToken 账户顺序: [source(w), destination(w), owner(signer)]。
// literal 模式下 source 取 mint 字段、destination 原样透传；
// associated 模式下两者分别由 (owner, mint) 与 (destination, mint) 推导出 ATA。
func TransferToken(p TransferTokenParams, mode domain.TokenAccountMode) (domain.Instruction, error) {
	return safeBuild("transfer", MsgTransferFailed, func() (sdktypes.Instruction, error) {
		src, dst, err := resolveTokenAccounts(p, mode)
		if err != nil {
			return sdktypes.Instruction{}, err
		}
		return sdktoken.Transfer(sdktoken.TransferParam{
			From:    src,
			To:      dst,
			Auth:    p.Owner.ToCommon(),
			Signers: []common.PublicKey{},
			Amount:  p.Amount,
		}), nil
	})
}

func resolveTokenAccounts(p TransferTokenParams, mode domain.TokenAccountMode) (common.PublicKey, common.PublicKey, error) {
	if mode != domain.TokenAccountAssociated {
		return p.Mint.ToCommon(), p.Destination.ToCommon(), nil
	}

	src, err := AssociatedTokenAddress(p.Owner, p.Mint)
	if err != nil {
		return common.PublicKey{}, common.PublicKey{}, err
	}
	dst, err := AssociatedTokenAddress(p.Destination, p.Mint)
	if err != nil {
		return common.PublicKey{}, common.PublicKey{}, err
	}
	return src.ToCommon(), dst.ToCommon(), nil
}

// AssociatedTokenAddress 推导 wallet 在 mint 下的关联代币账户地址，
// seeds = [wallet, TokenProgram, mint]，program = AssociatedTokenProgram
func AssociatedTokenAddress(wallet, mint types.Pubkey) (types.Pubkey, error) {
	ata, _, err := common.FindProgramAddress(
		[][]byte{wallet[:], consts.TokenProgram[:], mint[:]},
		consts.AssociatedTokenProgram.ToCommon(),
	)
	if err != nil {
		return types.Pubkey{}, err
	}
	return types.PubkeyFromCommon(ata), nil
}

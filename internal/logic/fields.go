package logic

import (
	"errors"

	"sol-instruction-api/internal/logic/domain"
	apitypes "sol-instruction-api/internal/types"
	"sol-instruction-api/pkg/types"
)

const msgMissingFields = "Missing required fields"

// requireFields 任一字段为空即返回 MissingField
func requireFields(values ...string) error {
	for _, v := range values {
		if v == "" {
			return domain.NewError(domain.MissingField, msgMissingFields)
		}
	}
	return nil
}

// checkAmount 仅在部署开启 RejectZeroAmount 时拒绝 0
func checkAmount(policy domain.Policy, amount uint64, msg string) error {
	if policy.RejectZeroAmount && amount == 0 {
		return domain.NewError(domain.InvalidAmount, msg)
	}
	return nil
}

// parsePubkey msg 标明是哪个字段解析失败，例如 "Invalid mint pubkey"
func parsePubkey(s, msg string) (types.Pubkey, error) {
	p, err := types.TryPubkeyFromBase58(s)
	if err != nil {
		return types.Pubkey{}, domain.Wrap(domain.InvalidPublicKey, msg, err)
	}
	return p, nil
}

func parseSecret(s string) (types.SecretKey, error) {
	k, err := types.TrySecretKeyFromBase58(s)
	switch {
	case err == nil:
		return k, nil
	case errors.Is(err, types.ErrInvalidBase58):
		return types.SecretKey{}, domain.Wrap(domain.InvalidBase58, "Invalid secret format", err)
	default:
		return types.SecretKey{}, domain.Wrap(domain.InvalidSecretKey, "Invalid secret key", err)
	}
}

func parseSignature(s string) (types.Signature, error) {
	sig, err := types.TrySignatureFromBase64(s)
	switch {
	case err == nil:
		return sig, nil
	case errors.Is(err, types.ErrInvalidBase64):
		return types.Signature{}, domain.Wrap(domain.InvalidBase64, "Invalid base64 signature", err)
	default:
		return types.Signature{}, domain.Wrap(domain.InvalidSignatureFormat, "Invalid signature format", err)
	}
}

func toInstructionResp(ix domain.Instruction) *apitypes.InstructionResp {
	accounts := make([]apitypes.AccountResp, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, apitypes.AccountResp{
			Pubkey:     a.PubKey.String(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	return &apitypes.InstructionResp{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: ix.DataBase64(),
	}
}

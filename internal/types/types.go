package types

// SuccessResponse 成功响应，Data 为各接口的具体结构
type SuccessResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// ErrorResponse 失败响应
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewSuccess[T any](data T) SuccessResponse[T] {
	return SuccessResponse[T]{Success: true, Data: data}
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

type KeypairResp struct {
	Pubkey string `json:"pubkey"` // base58
	Secret string `json:"secret"` // base58, 64 字节
}

// 请求中的字符串字段在解码层都是 optional，空值由逻辑层统一返回 MissingField；
// 数值字段缺失或越界在解码层直接拒绝。
type CreateTokenReq struct {
	MintAuthority string `json:"mint_authority,optional"`
	Mint          string `json:"mint,optional"`
	Decimals      uint8  `json:"decimals,range=[0:255]"`
}

type MintTokenReq struct {
	Mint        string `json:"mint,optional"`
	Destination string `json:"destination,optional"`
	Authority   string `json:"authority,optional"`
	Amount      uint64 `json:"amount"`
}

type SignMessageReq struct {
	Message string `json:"message,optional"`
	Secret  string `json:"secret,optional"`
}

type SignMessageResp struct {
	Signature string `json:"signature"`  // base64
	PublicKey string `json:"public_key"` // base58
	Message   string `json:"message"`
}

type VerifyMessageReq struct {
	Message   string `json:"message,optional"`
	Signature string `json:"signature,optional"`
	Pubkey    string `json:"pubkey,optional"`
}

type VerifyMessageResp struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

type SendSolReq struct {
	From     string `json:"from,optional"`
	To       string `json:"to,optional"`
	Lamports uint64 `json:"lamports"`
}

type SendTokenReq struct {
	Destination string `json:"destination,optional"`
	Mint        string `json:"mint,optional"`
	Owner       string `json:"owner,optional"`
	Amount      uint64 `json:"amount"`
}

// AccountResp 指令中的单个账户
type AccountResp struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionResp /token/create、/token/mint、/send/token 的响应
type InstructionResp struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []AccountResp `json:"accounts"`
	InstructionData string        `json:"instruction_data"` // base64
}

// SolTransferResp /send/sol 的响应，accounts 只有地址
type SolTransferResp struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"` // base64
}

package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"sol-instruction-api/internal/svc"
)

// 指标与日志中使用的操作名
const (
	opKeypair       = "keypair"
	opCreateToken   = "token_create"
	opMintToken     = "token_mint"
	opSignMessage   = "message_sign"
	opVerifyMessage = "message_verify"
	opSendSol       = "send_sol"
	opSendToken     = "send_token"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: RootHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/keypair",
				Handler: KeypairHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/token/create",
				Handler: CreateTokenHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/token/mint",
				Handler: MintTokenHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/message/sign",
				Handler: SignMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/message/verify",
				Handler: VerifyMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/send/sol",
				Handler: SendSolHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/send/token",
				Handler: SendTokenHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/metrics",
				Handler: serverCtx.Metrics.Handler().ServeHTTP,
			},
		},
	)
}

// NotFoundHandler / NotAllowedHandler 让未知路由与错误方法也返回统一信封
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusNotFound, "Not found")
	})
}

func NotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

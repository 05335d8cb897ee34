package handler

import (
	"net/http"

	"sol-instruction-api/internal/consts"
	"sol-instruction-api/internal/logic"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

// RootHandler 存活检查，返回纯文本
func RootHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(consts.RootGreeting))
	}
}

func KeypairHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewKeypairLogic(r.Context(), svcCtx)
		resp, err := l.Keypair()
		respond(w, r, svcCtx, opKeypair, resp, err)
	}
}

func CreateTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateTokenReq
		if err := parseRequest(r, &req); err != nil {
			writeError(r.Context(), w, svcCtx, opCreateToken, err)
			return
		}

		l := logic.NewCreateTokenLogic(r.Context(), svcCtx)
		resp, err := l.CreateToken(&req)
		respond(w, r, svcCtx, opCreateToken, resp, err)
	}
}

func MintTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MintTokenReq
		if err := parseRequest(r, &req); err != nil {
			writeError(r.Context(), w, svcCtx, opMintToken, err)
			return
		}

		l := logic.NewMintTokenLogic(r.Context(), svcCtx)
		resp, err := l.MintToken(&req)
		respond(w, r, svcCtx, opMintToken, resp, err)
	}
}

func SignMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SignMessageReq
		if err := parseRequest(r, &req); err != nil {
			writeError(r.Context(), w, svcCtx, opSignMessage, err)
			return
		}

		l := logic.NewSignMessageLogic(r.Context(), svcCtx)
		resp, err := l.SignMessage(&req)
		respond(w, r, svcCtx, opSignMessage, resp, err)
	}
}

func VerifyMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.VerifyMessageReq
		if err := parseRequest(r, &req); err != nil {
			writeError(r.Context(), w, svcCtx, opVerifyMessage, err)
			return
		}

		l := logic.NewVerifyMessageLogic(r.Context(), svcCtx)
		resp, err := l.VerifyMessage(&req)
		respond(w, r, svcCtx, opVerifyMessage, resp, err)
	}
}

func SendSolHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SendSolReq
		if err := parseRequest(r, &req); err != nil {
			writeError(r.Context(), w, svcCtx, opSendSol, err)
			return
		}

		l := logic.NewSendSolLogic(r.Context(), svcCtx)
		resp, err := l.SendSol(&req)
		respond(w, r, svcCtx, opSendSol, resp, err)
	}
}

func SendTokenHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SendTokenReq
		if err := parseRequest(r, &req); err != nil {
			writeError(r.Context(), w, svcCtx, opSendToken, err)
			return
		}

		l := logic.NewSendTokenLogic(r.Context(), svcCtx)
		resp, err := l.SendToken(&req)
		respond(w, r, svcCtx, opSendToken, resp, err)
	}
}

package handler

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/internal/metrics"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/internal/types"
)

// statusOf 校验类错误 400，其余 500
func statusOf(kind domain.ErrorKind) int {
	if kind.IsClientError() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// parseRequest 解码 JSON 请求体；go-zero 对缺失字段返回 `field "x" is not set`。
// 非 JSON Content-Type 的请求体会被 httpx.Parse 直接跳过，这里提前拒绝
func parseRequest(r *http.Request, v any) error {
	if r.ContentLength != 0 && !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return domain.NewError(domain.InvalidRequest, "Invalid request body")
	}
	if err := httpx.Parse(r, v); err != nil {
		if strings.Contains(err.Error(), "is not set") {
			return domain.Wrap(domain.MissingField, "Missing required fields", err)
		}
		return domain.Wrap(domain.InvalidRequest, "Invalid request body", err)
	}
	return nil
}

func writeError(ctx context.Context, w http.ResponseWriter, svcCtx *svc.ServiceContext, op string, err error) {
	kind := domain.KindOf(err)
	if kind.IsClientError() {
		logx.WithContext(ctx).Infof("[%s] rejected: %v", op, err)
	} else {
		logx.WithContext(ctx).Errorf("[%s] failed: %v", op, err)
	}
	svcCtx.Metrics.ObserveOperation(op, string(kind))
	httpx.WriteJsonCtx(ctx, w, statusOf(kind), types.NewError(domain.MessageOf(err)))
}

func writeSuccess[T any](ctx context.Context, w http.ResponseWriter, svcCtx *svc.ServiceContext, op string, data T) {
	svcCtx.Metrics.ObserveOperation(op, metrics.ResultSuccess)
	httpx.OkJsonCtx(ctx, w, types.NewSuccess(data))
}

// respond 逻辑层返回后统一输出信封，不会出现部分成功
func respond[T any](w http.ResponseWriter, r *http.Request, svcCtx *svc.ServiceContext, op string, data T, err error) {
	if err != nil {
		writeError(r.Context(), w, svcCtx, op, err)
		return
	}
	writeSuccess(r.Context(), w, svcCtx, op, data)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, code int, msg string) {
	httpx.WriteJsonCtx(r.Context(), w, code, types.NewError(msg))
}

// RecoverMiddleware 兜底 panic，仍然返回 JSON 信封而不是空的 500
func RecoverMiddleware(svcCtx *svc.ServiceContext) rest.Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logx.WithContext(r.Context()).Errorf("[panic] %s %s: %v\n%s", r.Method, r.URL.Path, p, debug.Stack())
					svcCtx.Metrics.ObserveOperation(r.URL.Path, string(domain.InternalError))
					writeEnvelope(w, r, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next(w, r)
		}
	}
}

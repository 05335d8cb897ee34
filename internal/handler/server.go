package handler

import (
	"github.com/zeromicro/go-zero/rest"

	"sol-instruction-api/internal/config"
	"sol-instruction-api/internal/svc"
)

// NewServer 创建 rest.Server 并注册全部路由，未知路由与错误方法也返回 JSON 信封
func NewServer(c config.Config, svcCtx *svc.ServiceContext) *rest.Server {
	server := rest.MustNewServer(c.RestConf,
		rest.WithNotFoundHandler(NotFoundHandler()),
		rest.WithNotAllowedHandler(NotAllowedHandler()),
	)
	server.Use(RecoverMiddleware(svcCtx))
	RegisterHandlers(server, svcCtx)
	return server
}

package svc

import (
	"sol-instruction-api/internal/config"
	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/internal/metrics"
	"sol-instruction-api/pkg/logger"
)

// ServiceContext 请求处理共享的只读资源
type ServiceContext struct {
	Config  config.Config
	Policy  domain.Policy
	Metrics *metrics.Metrics
}

// NewServiceContext 创建服务上下文，配置非法时返回 error
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	policy, err := c.PolicyConf.ToPolicy()
	if err != nil {
		logger.Errorf("策略配置非法: %v", err)
		return nil, err
	}

	ctx := &ServiceContext{
		Config:  c,
		Policy:  policy,
		Metrics: metrics.New(),
	}

	if policy.TokenAccountMode == domain.TokenAccountLiteral {
		logger.Warnf("tokenAccountMode=literal: /send/token 的 source 账户直接取 mint 字段，不推导 ATA")
	}
	logger.Infof("服务上下文初始化完成, rejectZeroAmount=%v, tokenAccountMode=%s",
		policy.RejectZeroAmount, policy.TokenAccountMode)
	return ctx, nil
}

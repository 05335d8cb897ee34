package config

import (
	"fmt"

	"github.com/zeromicro/go-zero/rest"

	"sol-instruction-api/internal/logic/domain"
	"sol-instruction-api/pkg/logger"
)

// LogConfig 业务日志配置（go-zero 自身的访问日志由 RestConf.Log 控制）
type LogConfig struct {
	Format   string `json:",default=console,options=console|json"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:",optional"`                              // 日志目录，为空时只输出到 stdout
	Level    string `json:",default=info"`                          // 日志级别：debug / info / warn / error
	Compress bool   `json:",optional"`                              // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// PolicyConfig 部署级别的请求处理策略
type PolicyConfig struct {
	RejectZeroAmount bool   `json:",optional"`                                       // 是否拒绝 amount/lamports 为 0 的请求
	TokenAccountMode string `json:",default=literal,options=literal|associated"` // /send/token 的账户解析方式
}

func (c *PolicyConfig) ToPolicy() (domain.Policy, error) {
	mode, err := domain.ParseTokenAccountMode(c.TokenAccountMode)
	if err != nil {
		return domain.Policy{}, err
	}
	return domain.Policy{
		RejectZeroAmount: c.RejectZeroAmount,
		TokenAccountMode: mode,
	}, nil
}

// Config 是主配置结构体
type Config struct {
	rest.RestConf

	LogConf    LogConfig    `json:"Logger,optional"` // 业务日志配置
	PolicyConf PolicyConfig `json:"Policy,optional"` // 请求策略
}

// Validate 检查 go-zero 标签无法表达的约束
func (c *Config) Validate() error {
	if _, err := c.PolicyConf.ToPolicy(); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	return nil
}

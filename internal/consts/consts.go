package consts

const (
	// ServiceName 默认服务名，用于日志与指标命名空间
	ServiceName = "solana-api"

	// RootGreeting GET / 的存活检查响应
	RootGreeting = "Hello, world!"
)


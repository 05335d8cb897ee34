package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile    = "solana-api.log"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 10
	defaultMaxAgeDays = 7
)

// LogOption 日志初始化参数
type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 为空时只输出到 stdout
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩轮转后的旧日志
}

var (
	mu     sync.RWMutex
	sugar  = newDefault()
	closer func() error
)

func newDefault() *zap.SugaredLogger {
	core := zapcore.NewCore(newEncoder("console"), zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// Init 按配置替换全局 logger；LogDir 非空时同时写入按大小轮转的文件
func Init(opt LogOption) error {
	level, err := parseLevel(opt.Level)
	if err != nil {
		return err
	}

	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	var rotator *lumberjack.Logger
	if opt.LogDir != "" {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return fmt.Errorf("create log dir %s: %w", opt.LogDir, err)
		}
		rotator = &lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, defaultLogFile),
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   opt.Compress,
			LocalTime:  true,
		}
		writers = append(writers, zapcore.AddSync(rotator))
	}

	core := zapcore.NewCore(newEncoder(opt.Format), zapcore.NewMultiWriteSyncer(writers...), level)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()

	mu.Lock()
	old, oldCloser := sugar, closer
	sugar = l
	closer = nil
	if rotator != nil {
		closer = rotator.Close
	}
	mu.Unlock()

	_ = old.Sync()
	if oldCloser != nil {
		_ = oldCloser()
	}
	return nil
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Sync 刷新缓冲并关闭轮转文件，进程退出前调用
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	_ = sugar.Sync()
	if closer != nil {
		_ = closer()
		closer = nil
	}
}

func Debugf(format string, args ...any) { get().Debugf(format, args...) }
func Infof(format string, args ...any)  { get().Infof(format, args...) }
func Warnf(format string, args ...any)  { get().Warnf(format, args...) }
func Errorf(format string, args ...any) { get().Errorf(format, args...) }

package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"

	"sol-instruction-api/internal/config"
	"sol-instruction-api/internal/handler"
	"sol-instruction-api/internal/svc"
	"sol-instruction-api/pkg/logger"
)

var configFile = flag.String("f", "etc/solana-api.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if err := c.Validate(); err != nil {
		logx.Must(err)
	}

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		logx.Must(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		logx.Must(err)
	}

	server := handler.NewServer(c, serviceContext)

	sg := zerosvc.NewServiceGroup()
	sg.Add(server)

	logger.Infof("Starting solana api at %s:%d", c.Host, c.Port)

	// 启动服务
	go sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Infof("Shutting down services...")
	sg.Stop()
}

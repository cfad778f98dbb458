package main

import (
	"flag"
	"fmt"

	_ "github.com/HuXin0817/blokus-duo/pkg/pprof"
	"github.com/HuXin0817/blokus-duo/serve/internal/config"
	"github.com/HuXin0817/blokus-duo/serve/internal/handler"
	"github.com/HuXin0817/blokus-duo/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address, overrides the config file")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *serveAddr != "" {
		c.ListenOn = *serveAddr
	}

	ctx := svc.NewServiceContext(c)

	router := gin.Default()
	handler.RegisterHandlers(router, ctx)

	fmt.Printf("Starting server at %s...\n", c.ListenOn)
	if err := router.Run(c.ListenOn); err != nil {
		panic(err)
	}
}

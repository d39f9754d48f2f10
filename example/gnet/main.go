package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/keiofn/daylog"
	"github.com/keiofn/daylog/compat"
)

type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	cfg := daylog.DefaultConfig()
	cfg.Level = "debug"

	writer := daylog.NewWithConfig("Echo", cfg)
	defer writer.Close()

	gnetAdapter := compat.NewGnetAdapter(writer)

	err := gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
	)
	if err != nil {
		panic(err)
	}
}

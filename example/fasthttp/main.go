package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/keiofn/daylog"
	"github.com/keiofn/daylog/compat"
)

func main() {
	cfg := daylog.DefaultConfig()
	cfg.Level = "debug"

	writer := daylog.NewWithConfig("HTTP", cfg)
	defer writer.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		writer,
		compat.WithDefaultLevel(daylog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "daylog-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	writer.Info("starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) daylog.Level {
	if strings.Contains(msg, "connection cannot be served") {
		return daylog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return daylog.LevelError
	}
	return compat.DetectLogLevel(msg)
}

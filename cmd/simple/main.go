package main

import (
	"fmt"
	"os"

	"github.com/keiofn/daylog"
)

func main() {
	cfg := daylog.DefaultConfig()
	if err := cfg.ApplyOverride(
		"level=debug",
		"directory=./log",
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	writer := daylog.NewWithConfig("Simple", cfg)
	defer writer.Close()

	if err := daylog.Install(writer); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	daylog.Info("Simple example started")
	daylog.Debugf("pid %d", os.Getpid())
	daylog.Warn("something looks off:", 42)
	daylog.Error("something failed:", fmt.Errorf("example error"))
}

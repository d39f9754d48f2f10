package main

import (
	"fmt"
	"time"

	"github.com/keiofn/daylog"
)

func main() {
	writer := daylog.New("Progress")
	defer writer.Close()

	writer.Info("starting transfer")

	for pct := 0; pct <= 100; pct += 10 {
		last := pct == 100
		writer.WriteProgress(daylog.LevelInfo, fmt.Sprintf("transferring... %3d%%", pct), last)
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println()

	writer.Info("transfer complete")
}

package main

import (
	"sync"

	"github.com/keiofn/daylog"
)

const workers = 50

func main() {
	cfg := daylog.DefaultConfig()
	cfg.Level = "debug"
	cfg.EnableConsole = false

	writer := daylog.NewWithConfig("Stress", cfg)
	defer writer.Close()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				writer.Infof("worker %02d message %03d", id, n)
			}
		}(i)
	}
	wg.Wait()
}

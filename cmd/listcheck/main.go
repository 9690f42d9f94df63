package main

import (
	"log/slog"
	"os"

	"LinkedList/selfcheck"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// 可选参数：只运行某一个自检，例如 listcheck pop
	var names []string
	if len(os.Args) >= 2 {
		names = os.Args[1:2]
	}

	failures, err := selfcheck.NewRunner(os.Stdout, logger).Run(names...)
	if err != nil {
		logger.Error("listcheck failed", "err", err)
		os.Exit(2)
	}
	if failures > 0 {
		logger.Error("listcheck finished with mismatches", "failures", failures)
		os.Exit(1)
	}
}

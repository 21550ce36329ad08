// cmd/processor/main.go — interactive Numeric Matrix Processor.
//
// Reads menu choices and matrices from stdin and prints results to stdout.
//
// Usage:
//
//	go run ./cmd/processor [-v]
//
// With -v, debug logs (menu choices, operation shapes and timings) are
// written to stderr.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/katalvlaran/numproc/processor"
)

func main() {
	verbose := flag.Bool("v", false, "Log operations to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := processor.New(os.Stdin, os.Stdout, processor.WithLogger(logger)).Run(); err != nil {
		logger.Error("session aborted", slog.Any("err", err))
		os.Exit(1)
	}
}

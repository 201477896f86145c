package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/qepting91/usaidwat/internal/cli"
	"github.com/qepting91/usaidwat/internal/logging"
)

func main() {
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)

	err := cli.Execute(ctx, os.Args[1:], logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usaidwat:", err)
	}
	os.Exit(cli.ExitCode(err))
}

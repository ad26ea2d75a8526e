package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samzong/gitcz/cmd"
)

func main() {
	// Cancel prompts and the git child process on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx)
	cancel()
	os.Exit(code)
}

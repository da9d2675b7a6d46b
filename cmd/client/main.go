package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"caesar_cipher/internal/service/app"
	"caesar_cipher/internal/utils/log"

	"go.uber.org/zap"
)

func main() {
	// os.Args[0] is the program name, os.Args[1] is an optional server address
	if len(os.Args) > 1 {
		app.SetHost(os.Args[1])
	}

	// the TUI owns the terminal, so log to a file instead of stderr
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"caesar-client.log"}
	cfg.ErrorOutputPaths = []string{"caesar-client.log"}
	if l, err := cfg.Build(); err == nil {
		log.SetLogger(l)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.NewApp()
	a.Run(ctx)
}

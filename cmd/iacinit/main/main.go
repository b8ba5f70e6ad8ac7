package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/iacinit/cmd/iacinit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := iacinit.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/open-cli-collective/rsx-cli/internal/cmd/root"
	"github.com/open-cli-collective/rsx-cli/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := root.NewCmdRoot()
	if err := cmd.ExecuteContext(ctx); err != nil {
		r := view.NewRenderer(view.FormatPlain, false)
		r.SetWriter(os.Stderr)
		r.Error("Error: " + err.Error())
		stop()
		os.Exit(1)
	}
}

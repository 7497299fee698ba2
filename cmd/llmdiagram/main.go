package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/teranos/llmdiagram/cmd/llmdiagram/commands"
	"github.com/teranos/llmdiagram/errors"
	"github.com/teranos/llmdiagram/logger"
)

func main() {
	// Ctrl-C cancels the running fc-list or dot child
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := commands.RootCmd.ExecuteContext(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

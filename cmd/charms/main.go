// Package main is the entry point for the charms command line tool
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// describeError joins the messages along a chain of coded errors, ending
// with the first cause that carries no code
func describeError(err error) string {
	var parts []string
	for err != nil {
		parts = append(parts, errors.GetMessage(err))

		var coded *errors.Error
		if !errors.As(err, &coded) {
			break
		}
		err = coded.Cause
	}
	return strings.Join(parts, ": ")
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kvm-appvm/kvm-appvm/internal/command"
	"github.com/kvm-appvm/kvm-appvm/internal/iostreams"
	"github.com/kvm-appvm/kvm-appvm/internal/logging"
)

func NewSnippetCommand() *cobra.Command {
	const (
		long  = `Prints the bash log_action function for shell components that cannot call the library directly. Source it with: eval "$(appvmlog snippet)".`
		short = "Print the bash logging helper"
	)

	return command.New("snippet", short, long, runSnippet)
}

func runSnippet(ctx context.Context) error {
	io := iostreams.FromContext(ctx)
	return logging.WriteShellFunction(io.Out)
}

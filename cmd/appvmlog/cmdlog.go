package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kvm-appvm/kvm-appvm/internal/command"
	"github.com/kvm-appvm/kvm-appvm/internal/flag"
	"github.com/kvm-appvm/kvm-appvm/internal/iostreams"
	"github.com/kvm-appvm/kvm-appvm/internal/logging"
)

func NewCommandCommand() *cobra.Command {
	const (
		long  = "Records a command invocation in the component's log file, joining the arguments the way a shell would show them."
		short = "Record a command invocation"
	)

	cmd := command.New("command <component> <action> -- <arg>...", short, long, runCommand)
	cmd.Args = cobra.MinimumNArgs(3)

	return cmd
}

func runCommand(ctx context.Context) error {
	var (
		io   = iostreams.FromContext(ctx)
		args = flag.Args(ctx)
	)

	logger := logging.New(logging.Default(), io.ErrOut)
	return logger.LogCommand(args[0], args[1], args[2:])
}

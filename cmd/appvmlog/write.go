package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kvm-appvm/kvm-appvm/internal/command"
	"github.com/kvm-appvm/kvm-appvm/internal/flag"
	"github.com/kvm-appvm/kvm-appvm/internal/iostreams"
	"github.com/kvm-appvm/kvm-appvm/internal/logging"
)

func NewWriteCommand() *cobra.Command {
	const (
		long  = "Appends one entry to the component's log file, falling back to stderr when the log directory or file is not writable."
		short = "Append a log entry"
	)

	cmd := command.New("write <component> <action> [message]", short, long, runWrite)
	cmd.Args = cobra.RangeArgs(2, 3)

	flag.Add(cmd,
		flag.String{
			Name:        "command",
			Shorthand:   "c",
			Description: "Command invocation to record with the entry",
		},
	)

	return cmd
}

func runWrite(ctx context.Context) error {
	var (
		io   = iostreams.FromContext(ctx)
		args = flag.Args(ctx)
	)

	var message string
	if len(args) == 3 {
		message = args[2]
	}

	logger := logging.New(logging.Default(), io.ErrOut)
	return logger.Log(args[0], args[1], flag.GetString(ctx, "command"), message)
}

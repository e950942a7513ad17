package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kvm-appvm/kvm-appvm/internal/command"
	"github.com/kvm-appvm/kvm-appvm/internal/iostreams"
	"github.com/kvm-appvm/kvm-appvm/internal/logging"
)

func NewInitCommand() *cobra.Command {
	const (
		long  = "Creates the log directory if it does not exist. Fails only when creation is denied for a reason other than permissions; a permission denial is reported on stderr and the components fall back to stderr logging."
		short = "Create the log directory"
	)

	return command.New("init", short, long, runInit)
}

func runInit(ctx context.Context) error {
	io := iostreams.FromContext(ctx)

	logger := logging.New(logging.Default(), io.ErrOut)
	_, err := logger.EnsureLogDir()
	return err
}

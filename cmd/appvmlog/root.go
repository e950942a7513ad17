package main

import (
	"github.com/spf13/cobra"

	"github.com/kvm-appvm/kvm-appvm/internal/command"
)

func NewRootCmd() *cobra.Command {
	const (
		long  = "appvmlog appends audit entries to the shared kvm-appvm log files under /var/log/kvm-appvm"
		short = "kvm-appvm audit logging"
	)

	cmd := command.New("appvmlog", short, long, nil)

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}

	cmd.AddCommand(
		NewInitCommand(),
		NewWriteCommand(),
		NewCommandCommand(),
		NewSnippetCommand(),
	)
	return cmd
}

package command

import (
	"context"

	"github.com/spf13/cobra"
)

type contextKey struct{}

// NewContext derives a context carrying the command being run, so
// runners and the flag package can reach its flag set.
func NewContext(ctx context.Context, cmd *cobra.Command) context.Context {
	return context.WithValue(ctx, contextKey{}, cmd)
}

// FromContext returns the running command, or nil outside of a runner.
func FromContext(ctx context.Context) *cobra.Command {
	cmd, _ := ctx.Value(contextKey{}).(*cobra.Command)
	return cmd
}

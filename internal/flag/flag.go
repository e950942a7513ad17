// Package flag implements flag-related functionality.
package flag

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kvm-appvm/kvm-appvm/internal/command"
)

// Flag wraps the set of flags.
type Flag interface {
	addTo(*cobra.Command)
}

type Set []Flag

func (s Set) addTo(cmd *cobra.Command) {
	for _, flag := range s {
		flag.addTo(cmd)
	}
}

// Add adds flags to cmd.
func Add(cmd *cobra.Command, flags ...Flag) {
	for _, flag := range flags {
		flag.addTo(cmd)
	}
}

// Bool wraps the set of boolean flags.
type Bool struct {
	Name        string
	Shorthand   string
	Description string
	Default     bool
	Hidden      bool
}

func (b Bool) addTo(cmd *cobra.Command) {
	flags := cmd.Flags()

	if b.Shorthand != "" {
		_ = flags.BoolP(b.Name, b.Shorthand, b.Default, b.Description)
	} else {
		_ = flags.Bool(b.Name, b.Default, b.Description)
	}

	flags.Lookup(b.Name).Hidden = b.Hidden
}

// String wraps the set of string flags.
type String struct {
	Name        string
	Shorthand   string
	Description string
	Default     string
	Hidden      bool
}

func (s String) addTo(cmd *cobra.Command) {
	flags := cmd.Flags()

	if s.Shorthand != "" {
		_ = flags.StringP(s.Name, s.Shorthand, s.Default, s.Description)
	} else {
		_ = flags.String(s.Name, s.Default, s.Description)
	}

	flags.Lookup(s.Name).Hidden = s.Hidden
}

// GetString returns the value of the named string flag of the command
// carried by ctx.
func GetString(ctx context.Context, name string) string {
	cmd := command.FromContext(ctx)
	if cmd == nil {
		return ""
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// GetBool returns the value of the named boolean flag of the command
// carried by ctx.
func GetBool(ctx context.Context, name string) bool {
	cmd := command.FromContext(ctx)
	if cmd == nil {
		return false
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return v
}

// Args returns the positional arguments of the command carried by ctx.
func Args(ctx context.Context) []string {
	cmd := command.FromContext(ctx)
	if cmd == nil {
		return nil
	}
	return cmd.Flags().Args()
}

package iostreams

import "context"

type contextKey struct{}

// NewContext derives a context carrying io.
func NewContext(ctx context.Context, io *IOStreams) context.Context {
	return context.WithValue(ctx, contextKey{}, io)
}

// FromContext returns the IOStreams carried by ctx, or the system
// streams when none were attached.
func FromContext(ctx context.Context) *IOStreams {
	if io, ok := ctx.Value(contextKey{}).(*IOStreams); ok {
		return io
	}
	return System()
}

package timewindow

import "context"

type contextKey struct{}

func WithSnapshot(ctx context.Context, s Snapshot) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func SnapshotFromContext(ctx context.Context) (Snapshot, bool) {
	s, ok := ctx.Value(contextKey{}).(Snapshot)
	return s, ok
}

// Current returns the snapshot stored on ctx, or a fresh one from r when the
// call did not come through the HTTP middleware.
func Current(ctx context.Context, r *Resolver) Snapshot {
	if s, ok := SnapshotFromContext(ctx); ok {
		return s
	}
	return r.Snapshot()
}

package database

import (
	"context"
	"sync"
)

type hooksContextKey struct{}

// PostCommitHooks collects callbacks that must run only after the
// enclosing database transaction has committed. The background
// sentiment dispatch depends on this: a worker reading through a
// separate connection must be able to see the committed row.
type PostCommitHooks struct {
	mu    sync.Mutex
	fns   []func()
	fired bool
}

// WithPostCommitHooks installs a hook collector into the context and
// returns the derived context together with the collector. The caller
// runs the collector once its transaction has committed.
func WithPostCommitHooks(ctx context.Context) (context.Context, *PostCommitHooks) {
	hooks := &PostCommitHooks{}
	return context.WithValue(ctx, hooksContextKey{}, hooks), hooks
}

// AfterCommit registers fn to run after the transaction tracked by ctx
// commits. If no hook collector is present (no enclosing transaction,
// e.g. programmatic batch use), fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksContextKey{}).(*PostCommitHooks)
	if !ok {
		fn()
		return
	}
	hooks.add(fn)
}

func (h *PostCommitHooks) add(fn func()) {
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		// Commit already happened; run the late registration directly.
		fn()
		return
	}
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

// Run fires all registered hooks in registration order. Call it exactly
// once, after the transaction function has returned without error. On
// rollback simply do not call Run; the hooks are discarded.
func (h *PostCommitHooks) Run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.fired = true
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommitRunsOnlyAfterRun(t *testing.T) {
	ctx, hooks := WithPostCommitHooks(context.Background())

	var order []string
	AfterCommit(ctx, func() { order = append(order, "first") })
	AfterCommit(ctx, func() { order = append(order, "second") })

	assert.Empty(t, order, "hooks must not fire before Run")

	hooks.Run()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAfterCommitWithoutCollectorRunsImmediately(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func() { ran = true })
	assert.True(t, ran)
}

func TestAfterCommitLateRegistrationRunsImmediately(t *testing.T) {
	ctx, hooks := WithPostCommitHooks(context.Background())
	hooks.Run()

	ran := false
	AfterCommit(ctx, func() { ran = true })
	assert.True(t, ran, "registration after commit runs directly")
}

func TestPostCommitHooksRunIsIdempotent(t *testing.T) {
	ctx, hooks := WithPostCommitHooks(context.Background())

	count := 0
	AfterCommit(ctx, func() { count++ })

	hooks.Run()
	hooks.Run()
	assert.Equal(t, 1, count, "a hook fires at most once")
}

func TestDiscardedHooksNeverRun(t *testing.T) {
	ctx, _ := WithPostCommitHooks(context.Background())

	ran := false
	AfterCommit(ctx, func() { ran = true })

	// Rollback path: Run is never called and the hooks are dropped.
	assert.False(t, ran)
}

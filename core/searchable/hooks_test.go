package searchable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/pgsearch/core/searchable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks(t *testing.T) {
	ctx := context.Background()

	t.Run("should run handlers of the fired event in order", func(t *testing.T) {
		hooks := searchable.NewHooks[post]()
		var calls []string
		require.NoError(t, hooks.Subscribe(searchable.EventAfterSave, func(ctx context.Context, p post) error {
			calls = append(calls, "first:"+p.ID)
			return nil
		}))
		require.NoError(t, hooks.Subscribe(searchable.EventAfterSave, func(ctx context.Context, p post) error {
			calls = append(calls, "second:"+p.ID)
			return nil
		}))
		require.NoError(t, hooks.Subscribe(searchable.EventAfterDestroy, func(ctx context.Context, p post) error {
			calls = append(calls, "destroy:"+p.ID)
			return nil
		}))

		require.NoError(t, hooks.Fire(ctx, searchable.EventAfterSave, post{ID: "1"}))
		assert.Equal(t, []string{"first:1", "second:1"}, calls)
	})

	t.Run("should stop at the first failing handler", func(t *testing.T) {
		hooks := searchable.NewHooks[post]()
		errHook := errors.New("hook failed")
		called := false
		require.NoError(t, hooks.Subscribe(searchable.EventAfterCommit, func(context.Context, post) error { return errHook }))
		require.NoError(t, hooks.Subscribe(searchable.EventAfterCommit, func(context.Context, post) error {
			called = true
			return nil
		}))

		err := hooks.Fire(ctx, searchable.EventAfterCommit, post{})
		assert.ErrorIs(t, err, errHook)
		assert.False(t, called)
	})

	t.Run("should reject unknown events and nil handlers", func(t *testing.T) {
		hooks := searchable.NewHooks[post]()
		assert.ErrorIs(t, hooks.Subscribe("before_save", func(context.Context, post) error { return nil }), searchable.ErrUnknownEvent)
		assert.ErrorIs(t, hooks.Subscribe(searchable.EventAfterSave, nil), searchable.ErrNilHook)
		assert.ErrorIs(t, hooks.Fire(ctx, "before_save", post{}), searchable.ErrUnknownEvent)
	})

	t.Run("firing without subscribers is a no-op", func(t *testing.T) {
		assert.NoError(t, searchable.NewHooks[post]().Fire(ctx, searchable.EventAfterSave, post{}))
	})
}

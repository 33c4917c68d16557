package funccache

import (
	"context"
	"time"
)

// Call carries the arguments of one memoized invocation. Args preserve
// call order, which is significant for the derived key; Named entries
// contribute sorted by name, so the order they were set in never matters.
type Call struct {
	Args  []any
	Named map[string]any
}

// Wrap0 memoizes a zero-argument function under the given identity. The
// TTL is fixed at wrap time; ttl <= 0 uses the configured default.
func Wrap0[R any](c *Cache, identity string, ttl time.Duration, fn func(context.Context) (R, error)) func(context.Context) (R, error) {
	return func(ctx context.Context) (R, error) {
		return do(ctx, c, identity, ttl, Call{}, func(ctx context.Context) (R, error) {
			return fn(ctx)
		})
	}
}

// Wrap1 memoizes a one-argument function under the given identity.
func Wrap1[A, R any](c *Cache, identity string, ttl time.Duration, fn func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	return func(ctx context.Context, a A) (R, error) {
		return do(ctx, c, identity, ttl, Call{Args: []any{a}}, func(ctx context.Context) (R, error) {
			return fn(ctx, a)
		})
	}
}

// Wrap2 memoizes a two-argument function under the given identity.
func Wrap2[A, B, R any](c *Cache, identity string, ttl time.Duration, fn func(context.Context, A, B) (R, error)) func(context.Context, A, B) (R, error) {
	return func(ctx context.Context, a A, b B) (R, error) {
		return do(ctx, c, identity, ttl, Call{Args: []any{a, b}}, func(ctx context.Context) (R, error) {
			return fn(ctx, a, b)
		})
	}
}

// Wrap3 memoizes a three-argument function under the given identity.
func Wrap3[A, B, C, R any](c *Cache, identity string, ttl time.Duration, fn func(context.Context, A, B, C) (R, error)) func(context.Context, A, B, C) (R, error) {
	return func(ctx context.Context, a A, b B, cc C) (R, error) {
		return do(ctx, c, identity, ttl, Call{Args: []any{a, b, cc}}, func(ctx context.Context) (R, error) {
			return fn(ctx, a, b, cc)
		})
	}
}

// WrapCall memoizes a function that receives an explicit Call, for callers
// that need named arguments or an argument list whose arity is not known
// at compile time.
func WrapCall[R any](c *Cache, identity string, ttl time.Duration, fn func(context.Context, Call) (R, error)) func(context.Context, Call) (R, error) {
	return func(ctx context.Context, call Call) (R, error) {
		return do(ctx, c, identity, ttl, call, func(ctx context.Context) (R, error) {
			return fn(ctx, call)
		})
	}
}

package result

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/dmitrijs2005/recipediary/internal/logging"
)

const (
	DefaultCacheTimeout  = 2 * time.Second
	DefaultRemoteTimeout = 6 * time.Second
)

// Policy holds the per-store timeouts. A non-positive timeout falls back to
// the package default.
type Policy struct {
	CacheTimeout  time.Duration
	RemoteTimeout time.Duration
	Logger        logging.Logger
}

func (p Policy) cacheTimeout() time.Duration {
	if p.CacheTimeout <= 0 {
		return DefaultCacheTimeout
	}
	return p.CacheTimeout
}

func (p Policy) remoteTimeout() time.Duration {
	if p.RemoteTimeout <= 0 {
		return DefaultRemoteTimeout
	}
	return p.RemoteTimeout
}

func (p Policy) logger() logging.Logger {
	if p.Logger == nil {
		return logging.NewDiscardLogger()
	}
	return p.Logger
}

var errPanic = errors.New("panic in store call")

type outcome[T any] struct {
	value T
	err   error
}

// run executes call in its own goroutine under timeout. It returns as soon
// as either the call finishes or the deadline passes, even when call ignores
// its context. A panic inside call is reported as an error.
func run[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- outcome[T]{err: fmt.Errorf("%w: %v", errPanic, p)}
			}
		}()
		v, err := call(ctx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case o := <-done:
		if o.err == nil || ctx.Err() == nil {
			return o.value, o.err
		}
		// The call failed after its deadline passed; report the deadline.
		var zero T
		return zero, errors.Join(ctx.Err(), o.err)
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// FromCache runs a local store call and classifies the outcome.
func FromCache[T any](ctx context.Context, p Policy, call func(context.Context) (T, error)) Result[T] {
	v, err := run(ctx, p.cacheTimeout(), call)
	if err == nil {
		return Success(v)
	}

	p.logger().Warn(ctx, "cache call failed", "error", err)

	if errors.Is(err, context.DeadlineExceeded) {
		return GenericError[T](nil, CacheErrorTimeout, err)
	}
	return GenericError[T](nil, CacheErrorUnknown, err)
}

// FromRemote runs a remote store call and classifies the outcome.
func FromRemote[T any](ctx context.Context, p Policy, call func(context.Context) (T, error)) Result[T] {
	v, err := run(ctx, p.remoteTimeout(), call)
	if err == nil {
		return Success(v)
	}

	p.logger().Warn(ctx, "remote call failed", "error", err)

	var remoteErr *client.RemoteError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, client.ErrTimeout):
		return GenericError[T](intPtr(TimeoutCode), NetworkErrorTimeout, err)
	case errors.Is(err, client.ErrUnavailable):
		return NetworkUnavailable[T](err)
	case errors.Is(err, common.ErrBatchTooLarge):
		return GenericError[T](nil, BatchTooLarge, err)
	case errors.As(err, &remoteErr):
		return GenericError[T](intPtr(remoteErr.Code), remoteErr.Message, err)
	default:
		return GenericError[T](nil, NetworkErrorUnknown, err)
	}
}

// Do adapts an error-only call for FromCache and FromRemote.
func Do(call func(context.Context) error) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx)
	}
}

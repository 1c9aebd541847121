package result

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fast = Policy{CacheTimeout: 50 * time.Millisecond, RemoteTimeout: 50 * time.Millisecond}

func blockForever(ctx context.Context) (int, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

func ignoreContext(context.Context) (int, error) {
	time.Sleep(time.Second)
	return 1, nil
}

func TestFromCache(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		r := FromCache(ctx, fast, func(context.Context) (int, error) { return 7, nil })
		require.Equal(t, KindSuccess, r.Kind())
		assert.Equal(t, 7, r.Value())
		assert.True(t, r.OK())
	})

	t.Run("timeout", func(t *testing.T) {
		r := FromCache(ctx, fast, blockForever)
		require.Equal(t, KindGenericError, r.Kind())
		assert.Equal(t, CacheErrorTimeout, r.Message())
		assert.Nil(t, r.Code())
	})

	t.Run("timeout when call ignores context", func(t *testing.T) {
		start := time.Now()
		r := FromCache(ctx, fast, ignoreContext)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
		assert.Equal(t, CacheErrorTimeout, r.Message())
	})

	t.Run("other error", func(t *testing.T) {
		cause := errors.New("disk I/O error")
		r := FromCache(ctx, fast, func(context.Context) (int, error) { return 0, cause })
		require.Equal(t, KindGenericError, r.Kind())
		assert.Equal(t, CacheErrorUnknown, r.Message())
		assert.ErrorIs(t, r.Err(), cause)
	})

	t.Run("panic", func(t *testing.T) {
		r := FromCache(ctx, fast, func(context.Context) (int, error) { panic("corrupt row") })
		require.Equal(t, KindGenericError, r.Kind())
		assert.Equal(t, CacheErrorUnknown, r.Message())
		assert.ErrorIs(t, r.Err(), errPanic)
	})
}

func TestFromRemote(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
		wantCode *int
	}{
		{name: "unavailable", err: client.ErrUnavailable, wantKind: KindNetworkUnavailable, wantMsg: NetworkError},
		{name: "wrapped unavailable", err: fmt.Errorf("dial: %w", client.ErrUnavailable), wantKind: KindNetworkUnavailable, wantMsg: NetworkError},
		{name: "server timeout", err: client.ErrTimeout, wantKind: KindGenericError, wantMsg: NetworkErrorTimeout, wantCode: intPtr(408)},
		{name: "remote error", err: &client.RemoteError{Code: 500, Message: "db down"}, wantKind: KindGenericError, wantMsg: "db down", wantCode: intPtr(500)},
		{name: "batch too large", err: common.ErrBatchTooLarge, wantKind: KindGenericError, wantMsg: BatchTooLarge},
		{name: "unknown", err: errors.New("weird"), wantKind: KindGenericError, wantMsg: NetworkErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromRemote(ctx, fast, func(context.Context) (string, error) { return "", tt.err })
			require.Equal(t, tt.wantKind, r.Kind())
			assert.Equal(t, tt.wantMsg, r.Message())
			assert.Equal(t, tt.wantCode, r.Code())
			assert.ErrorIs(t, r.Err(), tt.err)
		})
	}

	t.Run("deadline", func(t *testing.T) {
		r := FromRemote(ctx, fast, blockForever)
		require.Equal(t, KindGenericError, r.Kind())
		require.NotNil(t, r.Code())
		assert.Equal(t, TimeoutCode, *r.Code())
		assert.Equal(t, NetworkErrorTimeout, r.Message())
	})

	t.Run("success", func(t *testing.T) {
		r := FromRemote(ctx, fast, func(context.Context) ([]string, error) { return []string{"a"}, nil })
		require.True(t, r.OK())
		assert.Equal(t, []string{"a"}, r.Value())
	})

	t.Run("panic", func(t *testing.T) {
		r := FromRemote(ctx, fast, func(context.Context) (int, error) { panic("boom") })
		assert.Equal(t, NetworkErrorUnknown, r.Message())
	})
}

func TestPolicyDefaults(t *testing.T) {
	var p Policy
	assert.Equal(t, DefaultCacheTimeout, p.cacheTimeout())
	assert.Equal(t, DefaultRemoteTimeout, p.remoteTimeout())
	assert.NotNil(t, p.logger())
}

func TestDo(t *testing.T) {
	cause := errors.New("x")
	r := FromCache(context.Background(), fast, Do(func(context.Context) error { return cause }))
	assert.Equal(t, KindGenericError, r.Kind())

	r = FromCache(context.Background(), fast, Do(func(context.Context) error { return nil }))
	assert.True(t, r.OK())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Success(3)", Success(3).String())
	assert.Equal(t, "GenericError(408, Network timeout)", GenericError[int](intPtr(408), NetworkErrorTimeout, nil).String())
	assert.Equal(t, "GenericError(x)", GenericError[int](nil, "x", nil).String())
	assert.Equal(t, "NetworkUnavailable", NetworkUnavailable[int](nil).String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

package async_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubkit-project/stubkit/async"
	"github.com/stubkit-project/stubkit/future"
	"github.com/stubkit-project/stubkit/spy"
)

var errBoom = errors.New("boom")

func await(t *testing.T, s *async.Spy, args ...any) (any, error) {
	t.Helper()
	r, err := s.Result(args...)
	require.NoError(t, err)
	return r.Await()
}

func TestResolvesOnceThenDefault(t *testing.T) {
	s := async.New("fetch")
	s.ResolvesOnce("first").Resolves("default")

	v, err := await(t, s)
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	for i := 0; i < 2; i++ {
		v, err = await(t, s)
		require.NoError(t, err)
		assert.Equal(t, "default", v)
	}
	assert.Equal(t, 3, s.CallCount())
}

func TestOnceQueueOrder(t *testing.T) {
	s := async.New("seq")
	s.ReturnsOnce("a", "b").ReturnsOnce("c").Returns("fallback")

	assert.Equal(t, "a", s.Do())
	assert.Equal(t, "b", s.Do())
	assert.Equal(t, "c", s.Do())
	assert.Equal(t, "fallback", s.Do(), "an exhausted queue falls through to the default")
}

func TestMixedOnceKinds(t *testing.T) {
	s := async.New("mixed")
	s.ReturnsOnce(1).
		ResolvesOnce(2).
		RejectsOnce(errBoom).
		CallsOnce(func(_ ...any) any { return 4 })

	assert.Equal(t, 1, s.Do())

	r, err := s.Result()
	require.NoError(t, err)
	v, err := r.Await()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	r, err = s.Result()
	require.NoError(t, err)
	_, err = r.Await()
	assert.ErrorIs(t, err, errBoom)

	assert.Equal(t, 4, s.Do())
}

func TestLockIgnoresEnqueues(t *testing.T) {
	s := async.New("locked")
	s.Resolves("default")
	require.True(t, s.Locked())

	s.ResolvesOnce("ignored").ReturnsOnce("ignored").RejectsOnce(errBoom)
	assert.Zero(t, s.Pending(), "enqueues while locked are silent no-ops")

	v, err := await(t, s)
	require.NoError(t, err)
	assert.Equal(t, "default", v, "the default value is returned, not the ignored once-value")
}

func TestLockingKeepsQueuedItems(t *testing.T) {
	s := async.New("keep")
	s.ResolvesOnce("queued")
	s.Resolves("default")

	v, err := await(t, s)
	require.NoError(t, err)
	assert.Equal(t, "queued", v, "items queued before locking are honored first")

	v, err = await(t, s)
	require.NoError(t, err)
	assert.Equal(t, "default", v)
}

func TestUnlockingSettersClearQueue(t *testing.T) {
	tt := []struct {
		name   string
		unlock func(s *async.Spy)
	}{
		{name: "CallThrough", unlock: func(s *async.Spy) { s.CallThrough() }},
		{name: "Throws", unlock: func(s *async.Spy) { s.Throws(errBoom) }},
		{name: "Calls", unlock: func(s *async.Spy) { s.Calls(func(_ ...any) any { return nil }) }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := async.New(tc.name)
			s.ResolvesOnce("stale")
			s.Returns("lock")
			require.True(t, s.Locked())

			tc.unlock(s)
			assert.False(t, s.Locked())
			assert.Zero(t, s.Pending())
		})
	}
}

func TestRejectionNeverRaisesSynchronously(t *testing.T) {
	s := async.New("reject")
	s.Rejects(errBoom)

	var v any
	require.NotPanics(t, func() { v = s.Do() })

	r, ok := v.(*future.Result)
	require.True(t, ok)
	assert.True(t, r.IsRejected())

	rec := s.LastCall()
	require.NotNil(t, rec)
	assert.ErrorIs(t, rec.Err, errBoom, "the rejected payload is recorded on the call record")

	_, err := r.Await()
	assert.ErrorIs(t, err, errBoom)
}

func TestResultOnFixedValue(t *testing.T) {
	s := async.New("fixed")
	s.Returns(42)

	_, err := s.Result()
	assert.ErrorIs(t, err, async.ErrNotDeferred)
}

func TestClears(t *testing.T) {
	t.Run("ClearCalls", func(t *testing.T) {
		s := async.New("cc")
		s.ResolvesOnce("queued")
		s.Resolves("default")
		s.Do()

		s.ClearCalls()
		assert.Zero(t, s.CallCount())
		assert.True(t, s.Locked(), "ClearCalls leaves the behavior configuration alone")
	})

	t.Run("ClearReturnValues", func(t *testing.T) {
		s := async.New("crv")
		s.ResolvesOnce("queued")
		s.Resolves("default")
		s.Do()

		s.ClearReturnValues()
		assert.Equal(t, 1, s.CallCount(), "records are kept")
		assert.False(t, s.Locked())
		assert.Zero(t, s.Pending())
		assert.Nil(t, s.Do(), "default is back to call-through on the no-op original")
	})

	t.Run("ClearAll", func(t *testing.T) {
		s := async.New("ca")
		s.ResolvesOnce("queued")
		s.Resolves("default")
		s.Do()

		s.ClearAll()
		assert.Zero(t, s.CallCount())
		assert.False(t, s.Locked())
		assert.Zero(t, s.Pending())
	})
}

func TestWrapExistingBase(t *testing.T) {
	base, err := spy.New(spy.Config{
		Name:     "loader",
		Original: func(key string) any { return "db:" + key },
		Equal:    reflect.DeepEqual,
	})
	require.NoError(t, err)

	s := async.Wrap(base)
	s.ResolvesOnce("cached")

	v := s.Do("k1")
	r, ok := v.(*future.Result)
	require.True(t, ok)
	got, err := r.Await()
	require.NoError(t, err)
	assert.Equal(t, "cached", got)

	assert.Equal(t, "db:k2", s.Do("k2"), "the exhausted queue falls through to call-through")
	assert.True(t, base.CalledWith("k1"))
	assert.True(t, base.CalledWith("k2"))
	assert.Same(t, base, s.Base())
}

func TestCallOrderUnderBackToBackCalls(t *testing.T) {
	s := async.New("ordered")
	s.ResolvesOnce(1, 2, 3)

	// Dequeue happens synchronously at call time, so the value each call
	// receives is fixed before anything is awaited.
	r1, _ := s.Result()
	r2, _ := s.Result()
	r3, _ := s.Result()

	v3, _ := r3.Await()
	v1, _ := r1.Await()
	v2, _ := r2.Await()
	assert.Equal(t, []any{1, 2, 3}, []any{v1, v2, v3})
}

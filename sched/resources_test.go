package sched_test

import (
	"testing"

	"github.com/plus3/blockfall/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterResourceIsIdempotent(t *testing.T) {
	registry := sched.NewResourceRegistry()

	first := sched.RegisterResource[Counter](registry)
	second := sched.RegisterResource[Clock](registry)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, sched.RegisterResource[Counter](registry))
}

func TestInsertAndGet(t *testing.T) {
	res := sched.NewResources(newTestRegistry())

	assert.Nil(t, sched.Get[Counter](res))

	ptr := sched.Insert(res, Counter{Value: 3})
	got := sched.Get[Counter](res)
	require.NotNil(t, got)
	assert.Same(t, ptr, got)
	assert.Equal(t, 3, got.Value)

	got.Value++
	assert.Equal(t, 4, sched.Get[Counter](res).Value)
}

func TestInsertReplaces(t *testing.T) {
	res := sched.NewResources(newTestRegistry())

	sched.Insert(res, Counter{Value: 1})
	sched.Insert(res, Counter{Value: 2})

	assert.Equal(t, 2, sched.Get[Counter](res).Value)
	assert.Equal(t, 1, res.Len())
}

func TestRemove(t *testing.T) {
	res := sched.NewResources(newTestRegistry())
	sched.Insert(res, Clock{})

	assert.True(t, sched.Remove[Clock](res))
	assert.False(t, sched.Remove[Clock](res))
	assert.Nil(t, sched.Get[Clock](res))
}

func TestNames(t *testing.T) {
	res := sched.NewResources(newTestRegistry())
	sched.Insert(res, Log{})
	sched.Insert(res, Counter{})

	assert.Equal(t, []string{"sched_test.Counter", "sched_test.Log"}, res.Names())
}

func TestUnregisteredResourcePanics(t *testing.T) {
	res := sched.NewResources(newTestRegistry())

	assert.PanicsWithValue(t, "resource type sched_test.Unregistered not registered", func() {
		sched.Insert(res, Unregistered{})
	})
}

func TestSingleton(t *testing.T) {
	res := sched.NewResources(newTestRegistry())

	t.Run("creates from initializer", func(t *testing.T) {
		s := sched.NewSingleton(res, Counter{Value: 10})
		require.True(t, s.Exists())
		assert.Equal(t, 10, s.Get().Value)
	})

	t.Run("keeps existing value", func(t *testing.T) {
		s := sched.NewSingleton(res, Counter{Value: 99})
		assert.Equal(t, 10, s.Get().Value)
	})

	t.Run("follows replacement", func(t *testing.T) {
		s := sched.NewSingleton[Counter](res)
		sched.Insert(res, Counter{Value: 7})
		assert.Equal(t, 7, s.Get().Value)
	})

	t.Run("unbound", func(t *testing.T) {
		var s sched.Singleton[Counter]
		assert.Nil(t, s.Get())
		assert.False(t, s.Exists())
	})
}

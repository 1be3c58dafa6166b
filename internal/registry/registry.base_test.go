// Package registry - Test registry pattern generic thread-safe.
package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "value-a")
	require.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cũ trả về isNew=false
	isNew, err = r.Register("a", "value-a2")
	require.NoError(t, err)
	assert.False(t, isNew)

	value, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, "value-a2", value)

	_, exists = r.Get("khong-ton-tai")
	assert.False(t, exists)
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()

	created := 0
	creator := func() (int, error) {
		created++
		return 42, nil
	}

	value, err := r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	// Lần hai lấy item đã có, creator không được gọi lại
	value, err = r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, created)

	// Creator lỗi thì item không được đăng ký
	_, err = r.GetOrCreate("y", func() (int, error) {
		return 0, errors.New("creator failed")
	})
	assert.Error(t, err)
	_, exists := r.Get("y")
	assert.False(t, exists)
}

func TestRegistry_RangeVaCount(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)
	r.Register("c", 3)
	assert.Equal(t, 3, r.Count())

	seen := map[string]int{}
	r.Range(func(name string, item int) bool {
		seen[name] = item
		return true
	})
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, seen)

	// fn trả về false thì dừng duyệt sớm
	visited := 0
	r.Range(func(name string, item int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "value-a")

	// Cleanup lỗi thì item không bị xóa
	deleted, err := r.Clear("a", func(item string) error {
		return errors.New("cleanup failed")
	})
	assert.Error(t, err)
	assert.False(t, deleted)
	_, exists := r.Get("a")
	assert.True(t, exists)

	cleaned := ""
	deleted, err = r.Clear("a", func(item string) error {
		cleaned = item
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "value-a", cleaned)

	// Xóa item không tồn tại
	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register(string(rune('a'+n%26)), n)
			r.Get(string(rune('a' + n%26)))
			r.Range(func(name string, item int) bool { return true })
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, r.Count(), 26)
	assert.Greater(t, r.Count(), 0)
}

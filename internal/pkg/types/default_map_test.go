package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMap(t *testing.T) {
	t.Run("get on missing key stores the default", func(t *testing.T) {
		m := NewDefaultMap[string](func() []int { return make([]int, 0) })

		got := m.Get("missing")

		assert.Empty(t, got)
		assert.Contains(t, m.ToMap(), "missing")
	})

	t.Run("set replaces the stored value", func(t *testing.T) {
		m := NewDefaultMap[string](func() int { return 0 })
		m.Set("k", 7)

		assert.Equal(t, 7, m.Get("k"))
	})

	t.Run("get returns the existing value", func(t *testing.T) {
		m := NewDefaultMap[string](func() int { return -1 })
		m.Set("k", 42)

		assert.Equal(t, 42, m.Get("k"))
		assert.Len(t, m.ToMap(), 1)
	})
}

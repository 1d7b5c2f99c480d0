package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestManager 在临时 HOME 下创建 gdata manager
func openTestManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	require.NoError(t, err)
	return manager
}

func TestSavedRange_ClampTo(t *testing.T) {
	tests := []struct {
		name string
		in   SavedRange
		want SavedRange
	}{
		{"范围内不变", SavedRange{Lower: 0.2, Upper: 0.8}, SavedRange{Lower: 0.2, Upper: 0.8}},
		{"下限越界", SavedRange{Lower: -1, Upper: 0.5}, SavedRange{Lower: 0, Upper: 0.5}},
		{"上限越界", SavedRange{Lower: 0.5, Upper: 3}, SavedRange{Lower: 0.5, Upper: 1}},
		{"反转时收缩", SavedRange{Lower: 0.7, Upper: 0.3}, SavedRange{Lower: 0.7, Upper: 0.7}},
		{"全部越界", SavedRange{Lower: 5, Upper: 6}, SavedRange{Lower: 1, Upper: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ClampTo(0, 1))
		})
	}
}

func TestRangeStore_LoadSave(t *testing.T) {
	manager := openTestManager(t, "test_range_store")

	store := NewRangeStore(manager)
	require.True(t, store.IsPersistent())

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(SavedRange{Lower: 0.25, Upper: 0.75}))

	// 新实例从同一存储读取
	reloaded, ok, err := NewRangeStore(manager).Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, SavedRange{Lower: 0.25, Upper: 0.75}, reloaded)
}

func TestRangeStore_CorruptedData(t *testing.T) {
	manager := openTestManager(t, "test_range_store_corrupted")
	require.NoError(t, manager.SaveObjectProp(rangeObject, rangeProperty, []byte("lower: [oops")))

	_, ok, err := NewRangeStore(manager).Load()
	assert.Error(t, err)
	assert.False(t, ok)
}

// TestRangeStore_NilGdata 测试 gdataManager 为 nil 时的降级场景
func TestRangeStore_NilGdata(t *testing.T) {
	store := NewRangeStore(nil)
	assert.False(t, store.IsPersistent())

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(SavedRange{Lower: 0.1, Upper: 0.9}))

	saved, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, SavedRange{Lower: 0.1, Upper: 0.9}, saved)
}

package unique

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record uses key for identity and key+detail for equality.
type record struct {
	key    string
	detail string
}

func newRecordList() *List[record] {
	return New(
		func(a, b record) bool { return strings.EqualFold(a.key, b.key) },
		func(a, b record) bool { return a == b },
	)
}

func TestList_Add(t *testing.T) {
	l := newRecordList()
	require.NoError(t, l.Add(record{"a", "1"}))
	require.NoError(t, l.Add(record{"b", "1"}))

	err := l.Add(record{"A", "other"})
	assert.ErrorIs(t, err, ErrDuplicateEntity)
	assert.Equal(t, []record{{"a", "1"}, {"b", "1"}}, l.Items())
}

func TestList_Set(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		l := newRecordList()
		require.NoError(t, l.ReplaceAll([]record{{"a", "1"}, {"b", "1"}, {"c", "1"}}))

		require.NoError(t, l.Set(record{"b", "1"}, record{"z", "2"}))
		assert.Equal(t, []record{{"a", "1"}, {"z", "2"}, {"c", "1"}}, l.Items())
	})

	t.Run("same identity different details", func(t *testing.T) {
		l := newRecordList()
		require.NoError(t, l.Add(record{"a", "1"}))
		require.NoError(t, l.Set(record{"a", "1"}, record{"a", "2"}))
		assert.Equal(t, record{"a", "2"}, l.At(0))
	})

	t.Run("collision rejected", func(t *testing.T) {
		l := newRecordList()
		require.NoError(t, l.ReplaceAll([]record{{"a", "1"}, {"b", "1"}}))
		assert.ErrorIs(t, l.Set(record{"a", "1"}, record{"b", "9"}), ErrDuplicateEntity)
		assert.Equal(t, []record{{"a", "1"}, {"b", "1"}}, l.Items())
	})

	t.Run("missing target", func(t *testing.T) {
		l := newRecordList()
		assert.ErrorIs(t, l.Set(record{"a", "1"}, record{"b", "1"}), ErrNotFound)
	})
}

func TestList_Remove(t *testing.T) {
	l := newRecordList()
	require.NoError(t, l.ReplaceAll([]record{{"a", "1"}, {"b", "1"}}))

	assert.ErrorIs(t, l.Remove(record{"a", "other"}), ErrNotFound, "removal needs full equality")
	require.NoError(t, l.Remove(record{"a", "1"}))
	assert.Equal(t, []record{{"b", "1"}}, l.Items())
	assert.ErrorIs(t, l.Remove(record{"a", "1"}), ErrNotFound)
}

func TestList_ReplaceAll(t *testing.T) {
	l := newRecordList()
	require.NoError(t, l.Add(record{"x", "1"}))

	err := l.ReplaceAll([]record{{"a", "1"}, {"A", "2"}})
	assert.ErrorIs(t, err, ErrDuplicateEntity)
	assert.Equal(t, []record{{"x", "1"}}, l.Items(), "failed replace leaves contents untouched")

	require.NoError(t, l.ReplaceAll(nil))
	assert.Equal(t, 0, l.Len())
}

func TestList_ItemsIsSnapshot(t *testing.T) {
	l := newRecordList()
	require.NoError(t, l.Add(record{"a", "1"}))
	items := l.Items()
	items[0] = record{"mutated", "!"}
	assert.Equal(t, record{"a", "1"}, l.At(0))
}

func TestNew_NilPredicatePanics(t *testing.T) {
	assert.Panics(t, func() { New[record](nil, func(a, b record) bool { return true }) })
}

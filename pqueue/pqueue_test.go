package pqueue

import (
	"testing"

	"github.com/byuldev/byulnav/coord"
	"github.com/stretchr/testify/assert"
)

func TestKeyLessLexicographic(t *testing.T) {
	assert.True(t, Key{K1: 1, K2: 9}.Less(Key{K1: 2, K2: 0}))
	assert.True(t, Key{K1: 1, K2: 1}.Less(Key{K1: 1, K2: 2}))
	assert.False(t, Key{K1: 1, K2: 2}.Less(Key{K1: 1, K2: 2}))
}

func TestKeyCompare(t *testing.T) {
	assert.Equal(t, -1, Key{K1: 0}.Compare(Key{K1: 1}))
	assert.Equal(t, 1, Key{K1: 1}.Compare(Key{K1: 0}))
	assert.Equal(t, 0, Key{K1: 1, K2: 2}.Compare(Key{K1: 1, K2: 2}))
}

func TestPopReturnsSmallestKeyFirst(t *testing.T) {
	q := New()
	q.Push(coord.New(0, 0), Key{K1: 5})
	q.Push(coord.New(1, 0), Key{K1: 1})
	q.Push(coord.New(2, 0), Key{K1: 3})

	c, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, coord.New(1, 0), c)

	c, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, coord.New(2, 0), c)

	c, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, coord.New(0, 0), c)

	assert.True(t, q.IsEmpty())
}

func TestPushUpdatesExistingEntryInPlace(t *testing.T) {
	q := New()
	a := coord.New(0, 0)
	q.Push(a, Key{K1: 5})
	q.Push(coord.New(1, 0), Key{K1: 1})

	q.Push(a, Key{K1: 0})
	k, ok := q.KeyOf(a)
	assert.True(t, ok)
	assert.Equal(t, Key{K1: 0}, k)

	c, _ := q.Pop()
	assert.Equal(t, a, c)
	assert.Equal(t, 1, q.Len())
}

func TestRemove(t *testing.T) {
	q := New()
	a := coord.New(0, 0)
	q.Push(a, Key{K1: 1})
	q.Push(coord.New(1, 1), Key{K1: 2})

	assert.True(t, q.Remove(a))
	assert.False(t, q.Contains(a))
	assert.False(t, q.Remove(a))
}

func TestTopAndTopKey(t *testing.T) {
	q := New()
	q.Push(coord.New(0, 0), Key{K1: 5})
	q.Push(coord.New(1, 0), Key{K1: 1})

	c, ok := q.Top()
	assert.True(t, ok)
	assert.Equal(t, coord.New(1, 0), c)

	k, ok := q.TopKey()
	assert.True(t, ok)
	assert.Equal(t, Key{K1: 1}, k)

	assert.Equal(t, 2, q.Len())
}

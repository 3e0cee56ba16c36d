package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	l := NewValueList()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, "[]", l.String())
}

func TestEmpty(t *testing.T) {
	l := NewValueList()

	v, ok := l.Pop()
	assert.False(t, ok)
	assert.Nil(t, v)

	v, ok = l.Peek()
	assert.False(t, ok)
	assert.Nil(t, v)

	p, ok := l.PeekMut()
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestPushPop(t *testing.T) {
	l := NewValueList()
	l.Push(1)
	l.Push(2)
	l.Push(3)

	v, ok := l.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, _ = l.Pop()
	assert.Equal(t, 3, v)
	v, _ = l.Pop()
	assert.Equal(t, 2, v)

	l.Push(4)
	l.Push(5)

	v, _ = l.Pop()
	assert.Equal(t, 5, v)
	v, _ = l.Pop()
	assert.Equal(t, 4, v)
	v, _ = l.Pop()
	assert.Equal(t, 1, v)

	_, ok = l.Pop()
	assert.False(t, ok)
}

func TestPeekMut(t *testing.T) {
	l := NewValueList()
	l.Push(1)
	l.Push(2)

	ref, ok := l.PeekMut()
	assert.True(t, ok)
	*ref.Get() = "two"
	ref.Close()

	v, _ := l.Peek()
	assert.Equal(t, "two", v)
	assert.Equal(t, "[two 1]", l.String())
}

func TestIntoIter(t *testing.T) {
	l := NewValueList()
	l.Push(1)
	l.Push(2)
	l.Push(3)

	it := l.IntoIter()
	for _, want := range []int{3, 2, 1} {
		v, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok := it.Next()
	assert.False(t, ok)
	assert.Panics(t, func() { l.Push(4) })
}

func TestIter(t *testing.T) {
	l := NewValueList()
	l.Push(1)
	l.Push(2)
	l.Push(3)

	it := l.Iter()
	for _, want := range []int{3, 2, 1} {
		v, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, 3, l.Len())
}

func TestIterMut(t *testing.T) {
	l := NewValueList()
	l.Push(1)
	l.Push(2)
	l.Push(3)

	it := l.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = (*p).(int) + 1
	}

	assert.Equal(t, "[4 3 2]", l.String())
}

func TestClose(t *testing.T) {
	l := NewValueList()
	l.Push(1)
	l.Push(2)

	var released []int
	l.OnTeardown(func(n int) { released = append(released, n) })

	assert.NoError(t, l.Close())
	assert.Equal(t, []int{2}, released)
	assert.Error(t, l.Close())
	assert.Equal(t, []int{2}, released)
}

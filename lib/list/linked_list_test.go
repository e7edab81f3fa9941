package list

import (
	"container/list"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](l LinkedList[T]) []T {
	res := make([]T, 0, l.Len())
	_ = l.Foreach(func(idx int64, e *NodeElement[T]) error {
		res = append(res, e.Value)
		return nil
	})
	return res
}

func TestLinkedList_AppendValue(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	assert.Equal(t, 5, len(elements))
	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		assert.Equal(t, elements[idx], e)
		return nil
	})
	require.NoError(t, err)

	dlist2 := list.New()
	for i := 1; i <= 5; i++ {
		dlist2.PushBack(i)
	}
	assert.Equal(t, dlist.Len(), int64(dlist2.Len()))

	dlistItr := dlist.Front()
	dlist2Itr := dlist2.Front()
	for dlist2Itr != nil {
		assert.Equal(t, dlistItr.Value, dlist2Itr.Value)
		dlist2Itr = dlist2Itr.Next()
		dlistItr = dlistItr.Next()
	}
	require.Nil(t, dlistItr)
}

func TestLinkedList_PushFrontBack(t *testing.T) {
	dlist := NewLinkedList[string]()
	require.Nil(t, dlist.Front())
	require.Nil(t, dlist.Back())

	dlist.PushBack("b")
	dlist.PushFront("a")
	dlist.PushBack("c")
	require.Equal(t, []string{"a", "b", "c"}, collect(dlist))
	require.Equal(t, "a", dlist.Front().Value)
	require.Equal(t, "c", dlist.Back().Value)
	require.False(t, dlist.Front().HasPrev())
	require.False(t, dlist.Back().HasNext())
	require.Equal(t, "b", dlist.Back().Prev().Value)
}

func TestLinkedList_Remove(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1, 2, 3, 4)

	require.Equal(t, elements[1], dlist.Remove(elements[1]))
	require.Equal(t, []int{1, 3, 4}, collect(dlist))
	require.Nil(t, dlist.Remove(elements[1]), "removed twice")

	other := NewLinkedList[int]()
	e := other.PushBack(9)
	require.Nil(t, dlist.Remove(e), "element of another list")

	require.NotNil(t, dlist.Remove(dlist.Front()))
	require.NotNil(t, dlist.Remove(dlist.Back()))
	require.Equal(t, []int{3}, collect(dlist))
	require.NotNil(t, dlist.Remove(dlist.Front()))
	require.Equal(t, int64(0), dlist.Len())
	require.Nil(t, dlist.Front())
	require.Error(t, dlist.Foreach(func(idx int64, e *NodeElement[int]) error { return nil }))
}

func TestLinkedList_ForeachRemoveAndStop(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValue(1, 2, 3, 4, 5, 6)
	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		if e.Value%2 == 0 {
			dlist.Remove(e)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, collect(dlist))

	stop := errors.New("stop")
	visited := 0
	err = dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		visited++
		if e.Value == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, visited)
}

func TestLinkedList_FindFirst(t *testing.T) {
	dlist := NewLinkedList[int]()
	_, ok := dlist.FindFirst(1)
	require.False(t, ok)

	dlist.AppendValue(7, 8, 8, 9)
	e, ok := dlist.FindFirst(8)
	require.True(t, ok)
	require.Equal(t, 7, e.Prev().Value)
	_, ok = dlist.FindFirst(10)
	require.False(t, ok)
}

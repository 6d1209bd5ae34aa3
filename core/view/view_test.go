package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/core/view"
	"github.com/anyarr/anyarr/raw"
)

func newInt32Array(t *testing.T, vals ...int32) (*raw.Array, api.TypeDesc) {
	t.Helper()
	desc := raw.TypeOf[int32]()
	a := raw.NewArray(desc.Size())
	ins := view.NewBackInserter(a, desc)
	for i := range vals {
		ins.Push(raw.ValueBytes(&vals[i]))
	}
	return a, desc
}

func TestViewAt(t *testing.T) {
	a, desc := newInt32Array(t, 10, 20, 30)
	v := view.New(a, desc)

	require.Equal(t, 3, v.Len())
	want := int32(20)
	require.True(t, v.At(1).EqualBytes(raw.ValueBytes(&want)))
}

func TestViewSwap(t *testing.T) {
	a, desc := newInt32Array(t, 1, 2)
	v := view.New(a, desc)

	v.Swap(0, 1)

	one, two := int32(1), int32(2)
	require.True(t, v.At(0).EqualBytes(raw.ValueBytes(&two)))
	require.True(t, v.At(1).EqualBytes(raw.ValueBytes(&one)))
}

func TestIterTraversal(t *testing.T) {
	a, desc := newInt32Array(t, 5, 6, 7)
	v := view.New(a, desc)

	var got []int
	for it := v.Begin(); !it.AtEnd(); it.Next() {
		require.NotNil(t, it.Deref().Bytes())
		got = append(got, it.Index())
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestIterArithmetic(t *testing.T) {
	a, desc := newInt32Array(t, 1, 2, 3, 4, 5)
	v := view.New(a, desc)

	it := v.Begin()
	jt := it.Add(3)
	require.Equal(t, 3, jt.Index())
	require.Equal(t, 3, it.Distance(jt))
	require.True(t, it.Before(jt))
	require.False(t, jt.Before(it))

	jt.Prev()
	require.Equal(t, 2, jt.Index())

	end := v.End()
	require.Equal(t, v.Len(), end.Index())
	require.True(t, end.AtEnd())
}

func TestIterDerefIsLazy(t *testing.T) {
	a, desc := newInt32Array(t, 1, 2)
	v := view.New(a, desc)

	it := v.Begin()
	first := it.Deref()
	again := it.Deref()
	// no movement: the same cached window must be handed back
	require.Same(t, &first.Bytes()[0], &again.Bytes()[0])

	it.Next()
	moved := it.Deref()
	require.NotSame(t, &first.Bytes()[0], &moved.Bytes()[0])
}

func TestMutIterAssign(t *testing.T) {
	a, desc := newInt32Array(t, 1, 2, 3)
	v := view.New(a, desc)

	it := v.MutBegin().Add(2)
	val := int32(42)
	it.Deref().SetBytes(raw.ValueBytes(&val))

	require.True(t, v.At(2).EqualBytes(raw.ValueBytes(&val)))
}

func TestBackInserter(t *testing.T) {
	desc := raw.TypeOf[int32]()
	a := raw.NewArray(desc.Size())
	ins := view.NewBackInserter(a, desc)

	for _, val := range []int32{3, 1, 4} {
		v := val
		ins.Push(raw.ValueBytes(&v))
	}
	require.Equal(t, 3, a.Len())

	want := int32(1)
	require.True(t, view.New(a, desc).At(1).EqualBytes(raw.ValueBytes(&want)))
}

func TestBackInserterPushRefTypeMismatch(t *testing.T) {
	dst := raw.NewArray(4)
	ins := view.NewBackInserter(dst, raw.TypeOf[int32]())

	src, srcDesc := newInt32Array(t, 1)
	other := view.New(src, srcDesc).At(0)
	require.NoError(t, ins.PushRef(other))

	f32 := view.New(src, raw.TypeOf[float32]()).At(0)
	require.ErrorIs(t, ins.PushRef(f32), api.ErrTypeMismatch)
}

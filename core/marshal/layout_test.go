package marshal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anyarr/anyarr/core/marshal"
)

func TestLayoutOf(t *testing.T) {
	cases := []struct {
		name     string
		kinds    []marshal.Kind
		elemSize int
		retSize  int
		offsets  []int
		retOff   int
		total    int
	}{
		{
			name:     "unary predicate",
			kinds:    []marshal.Kind{marshal.KindElem},
			elemSize: 4, retSize: 1,
			offsets: []int{0}, retOff: 4, total: 5,
		},
		{
			name:     "binary comparator",
			kinds:    []marshal.Kind{marshal.KindElem, marshal.KindElem},
			elemSize: 8, retSize: 1,
			offsets: []int{0, 8}, retOff: 16, total: 17,
		},
		{
			name:     "mixed element and bool",
			kinds:    []marshal.Kind{marshal.KindElem, marshal.KindBool, marshal.KindElem},
			elemSize: 3, retSize: 4,
			offsets: []int{0, 3, 4}, retOff: 7, total: 11,
		},
		{
			name:  "no arguments",
			kinds: nil, elemSize: 16, retSize: 2,
			offsets: []int{}, retOff: 0, total: 2,
		},
		{
			name:     "void return",
			kinds:    []marshal.Kind{marshal.KindElem},
			elemSize: 2, retSize: 0,
			offsets: []int{0}, retOff: 2, total: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lay := marshal.LayoutOf(tc.kinds, tc.elemSize, tc.retSize)
			require.Equal(t, tc.offsets, lay.Offsets)
			require.Equal(t, tc.retOff, lay.RetOff)
			require.Equal(t, tc.total, lay.Total)
		})
	}
}

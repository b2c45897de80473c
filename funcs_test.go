package funcs_test

import (
	"context"
	"testing"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vinceanalytics/funcs"
	"github.com/vinceanalytics/funcs/distinct"
)

func TestRegistry(t *testing.T) {
	r := funcs.NewRegistry()
	require.NoError(t, r.Register(distinct.New()))
	require.Error(t, r.Register(distinct.New()), "duplicate names are rejected")

	f, ok := r.Lookup(distinct.Name)
	require.True(t, ok)
	require.Equal(t, distinct.Name, f.Name())
	require.Equal(t, 1, f.Arity())

	_, ok = r.Lookup("no_such_function")
	require.False(t, ok)
}

func TestCallUnknown(t *testing.T) {
	_, err := funcs.Call(context.Background(), "no_such_function")
	require.ErrorIs(t, err, funcs.ErrNotFound)
}

func TestCallTypeError(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.Append(1)
	arg := b.NewInt64Array()
	defer arg.Release()

	_, err := funcs.Call(context.Background(), distinct.Name, arg)
	require.ErrorIs(t, err, funcs.ErrIllegalType)
}

func buildRows(t *testing.T, mem memory.Allocator, rows ...[]int64) *array.List {
	t.Helper()
	lb := array.NewListBuilder(mem, arrow.PrimitiveTypes.Int64)
	defer lb.Release()
	vb := lb.ValueBuilder().(*array.Int64Builder)
	for _, row := range rows {
		lb.Append(true)
		vb.AppendValues(row, nil)
	}
	return lb.NewArray().(*array.List)
}

func TestCallConstant(t *testing.T) {
	mem := memory.NewGoAllocator()
	arg := buildRows(t, mem, []int64{1, 2, 2})
	defer arg.Release()

	out, err := funcs.CallConstant(context.Background(), distinct.Name, arg, 3)
	require.NoError(t, err)
	defer out.Release()

	got, err := json.Marshal(out)
	require.NoError(t, err)
	require.JSONEq(t, `[[1,2],[1,2],[1,2]]`, string(got))

	two := buildRows(t, mem, []int64{1}, []int64{2})
	defer two.Release()
	_, err = funcs.CallConstant(context.Background(), distinct.Name, two, 2)
	require.Error(t, err, "constant argument must be a single row")
}

func TestApply(t *testing.T) {
	mem := memory.NewGoAllocator()
	blocks := make([]arrow.Array, 8)
	for i := range blocks {
		blocks[i] = buildRows(t, mem,
			[]int64{int64(i), int64(i), int64(i) + 1},
			[]int64{int64(i)},
		)
	}
	defer func() {
		for _, b := range blocks {
			b.Release()
		}
	}()

	out, err := funcs.Apply(context.Background(), distinct.New(), blocks)
	require.NoError(t, err)
	require.Len(t, out, len(blocks))
	for i, a := range out {
		got, err := json.Marshal(a)
		require.NoError(t, err)
		want, err := json.Marshal([][]int64{{int64(i), int64(i) + 1}, {int64(i)}})
		require.NoError(t, err)
		require.JSONEq(t, string(want), string(got))
		a.Release()
	}
}

func TestApplyResolveError(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.Append(1)
	arg := b.NewInt64Array()
	defer arg.Release()

	_, err := funcs.Apply(context.Background(), distinct.New(), []arrow.Array{arg})
	require.ErrorIs(t, err, funcs.ErrIllegalType)
}

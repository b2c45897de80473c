package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/stretchr/testify/require"
	"github.com/vinceanalytics/funcs"
	"github.com/vinceanalytics/funcs/distinct"
)

func TestReadColumnInfer(t *testing.T) {
	mem := memory.NewGoAllocator()
	cases := []struct {
		in   string
		elem arrow.DataType
	}{
		{"[1,2,3]\n[4]\n", arrow.PrimitiveTypes.Int64},
		{"[1.5,2]\n", arrow.PrimitiveTypes.Float64},
		{`["a","b"]` + "\n", arrow.BinaryTypes.String},
		{"[true,false]\n", arrow.FixedWidthTypes.Boolean},
		{"[]\n", arrow.PrimitiveTypes.Int64},
	}
	for _, k := range cases {
		col, err := readColumn(mem, strings.NewReader(k.in), "auto")
		require.NoError(t, err, k.in)
		require.Equal(t, k.elem, col.DataType().(*arrow.ListType).Elem(), k.in)
		col.Release()
	}

	_, err := readColumn(mem, strings.NewReader("[1,\"a\"]\n"), "auto")
	require.Error(t, err, "mixed element types")
}

func TestRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()
	in := "[1,2,2,3,1]\nnull\n[]\n[5,null,5]\n"
	col, err := readColumn(mem, strings.NewReader(in), "auto")
	require.NoError(t, err)
	defer col.Release()

	out, err := funcs.Call(context.Background(), distinct.Name, col)
	require.NoError(t, err)
	defer out.Release()

	var buf bytes.Buffer
	require.NoError(t, writeColumn(&buf, out))
	require.Equal(t, "[1,2,3]\nnull\n[]\n[5]\n", buf.String())
}

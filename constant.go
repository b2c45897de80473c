package funcs

import (
	"context"
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/compute"
)

// CallConstant evaluates a function whose argument is one value repeated rows
// times. The function runs once on the single row argument and the result is
// replicated, instead of recomputing per row.
func CallConstant(ctx context.Context, name string, arg arrow.Array, rows int) (arrow.Array, error) {
	if arg.Len() != 1 {
		return nil, fmt.Errorf("funcs: constant argument must have one row, got %d", arg.Len())
	}
	one, err := Call(ctx, name, arg)
	if err != nil {
		return nil, err
	}
	if rows == 1 {
		return one, nil
	}
	defer one.Release()
	parts := make([]arrow.Array, rows)
	for i := range parts {
		parts[i] = one
	}
	return array.Concatenate(parts, compute.GetAllocator(ctx))
}

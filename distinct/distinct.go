// Package distinct implements the array_distinct kernel: for every row of a
// list column it emits the row's distinct elements, keeping first occurrence
// order and dropping null entries.
package distinct

import (
	"context"
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/compute"
	"github.com/vinceanalytics/funcs"
)

// Name the kernel is registered under.
const Name = "array_distinct"

func init() {
	funcs.Default.MustRegister(New())
}

type fn struct{}

// New returns the array_distinct function.
func New() funcs.Function { return fn{} }

func (fn) Name() string { return Name }

func (fn) Arity() int { return 1 }

// Resolve accepts a list of any element type. The result is a list of the
// same element type with nullability stripped, nulls never survive into the
// output.
func (fn) Resolve(args []arrow.DataType) (arrow.DataType, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes one argument, got %d", funcs.ErrArity, Name, len(args))
	}
	lt, ok := args[0].(*arrow.ListType)
	if !ok {
		return nil, fmt.Errorf("%w: argument of %s must be a list, got %s", funcs.ErrIllegalType, Name, args[0])
	}
	return resultType(lt), nil
}

func resultType(lt *arrow.ListType) *arrow.ListType {
	elem := lt.ElemField()
	elem.Nullable = false
	return arrow.ListOfField(elem)
}

// Exec picks one strategy per column from the concrete element
// representation: fixed width numerics dedup on the native value, strings on
// byte content through borrowed references, everything else through a 128 bit
// content fingerprint. The choice is made once, rows never re-dispatch.
func (f fn) Exec(ctx context.Context, args []arrow.Array) (arrow.Array, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes one argument, got %d", funcs.ErrArity, Name, len(args))
	}
	list, ok := args[0].(*array.List)
	if !ok {
		return nil, fmt.Errorf("%w: argument of %s must be a list, got %s", funcs.ErrIllegalType, Name, args[0].DataType())
	}
	mem := compute.GetAllocator(ctx)
	out := resultType(list.DataType().(*arrow.ListType))
	src := list.ListValues()

	switch src.DataType().ID() {
	case arrow.UINT8:
		return execNumeric[uint8, *array.Uint8Builder](mem, out, list, src.(*array.Uint8).Uint8Values(), intKey[uint8]), nil
	case arrow.UINT16:
		return execNumeric[uint16, *array.Uint16Builder](mem, out, list, src.(*array.Uint16).Uint16Values(), intKey[uint16]), nil
	case arrow.UINT32:
		return execNumeric[uint32, *array.Uint32Builder](mem, out, list, src.(*array.Uint32).Uint32Values(), intKey[uint32]), nil
	case arrow.UINT64:
		return execNumeric[uint64, *array.Uint64Builder](mem, out, list, src.(*array.Uint64).Uint64Values(), intKey[uint64]), nil
	case arrow.INT8:
		return execNumeric[int8, *array.Int8Builder](mem, out, list, src.(*array.Int8).Int8Values(), intKey[int8]), nil
	case arrow.INT16:
		return execNumeric[int16, *array.Int16Builder](mem, out, list, src.(*array.Int16).Int16Values(), intKey[int16]), nil
	case arrow.INT32:
		return execNumeric[int32, *array.Int32Builder](mem, out, list, src.(*array.Int32).Int32Values(), intKey[int32]), nil
	case arrow.INT64:
		return execNumeric[int64, *array.Int64Builder](mem, out, list, src.(*array.Int64).Int64Values(), intKey[int64]), nil
	case arrow.FLOAT32:
		return execNumeric[float32, *array.Float32Builder](mem, out, list, src.(*array.Float32).Float32Values(), float32Key), nil
	case arrow.FLOAT64:
		return execNumeric[float64, *array.Float64Builder](mem, out, list, src.(*array.Float64).Float64Values(), float64Key), nil
	case arrow.STRING:
		return execString(mem, out, list), nil
	case arrow.BINARY:
		return execBinary(mem, out, list), nil
	default:
		return execHashed(ctx, mem, out, list)
	}
}

package distinct

import (
	"encoding/binary"
	"math"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/cespare/xxhash/v2"
	"github.com/vinceanalytics/funcs/hashset"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func intKey[T integer](v T) uint64 { return uint64(v) }

// Floats dedup on bit identity, not numeric equality: every NaN bit pattern
// is one distinct value and 0.0 and -0.0 stay distinct.
func float32Key(v float32) uint64 { return uint64(math.Float32bits(v)) }

func float64Key(v float64) uint64 { return math.Float64bits(v) }

func hashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxhash.Sum64(b[:])
}

type appender[T any] interface {
	array.Builder
	Append(T)
}

// execNumeric walks the rows of a fixed width numeric list column. One set is
// allocated for the whole column and cleared per row, first seen values go
// straight into the output value builder, the list builder finalizes one
// offset per row.
func execNumeric[T any, B appender[T]](
	mem memory.Allocator,
	dt *arrow.ListType,
	list *array.List,
	values []T,
	key func(T) uint64,
) arrow.Array {
	lb := array.NewListBuilderWithField(mem, dt.ElemField())
	defer lb.Release()
	vb := lb.ValueBuilder().(B)
	src := list.ListValues()
	set := hashset.New[uint64](hashUint64)
	for i := 0; i < list.Len(); i++ {
		if list.IsNull(i) {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		set.Clear()
		start, end := list.ValueOffsets(i)
		for j := start; j < end; j++ {
			if src.IsNull(int(j)) {
				continue
			}
			v := values[j]
			if set.Insert(key(v)) {
				vb.Append(v)
			}
		}
	}
	return lb.NewArray()
}

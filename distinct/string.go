package distinct

import (
	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/vinceanalytics/funcs/hashset"
)

// execString dedups on byte content. The set holds references into the
// column's data buffer, bytes are copied into the output only the first time
// a value is seen so rows with many repeated long strings stay cheap.
func execString(mem memory.Allocator, dt *arrow.ListType, list *array.List) arrow.Array {
	lb := array.NewListBuilderWithField(mem, dt.ElemField())
	defer lb.Release()
	vb := lb.ValueBuilder().(*array.StringBuilder)
	src := list.ListValues().(*array.String)
	set := hashset.NewStrings()
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
			v := src.Value(int(j))
			if set.Insert(v) {
				vb.Append(v)
			}
		}
	}
	return lb.NewArray()
}

func execBinary(mem memory.Allocator, dt *arrow.ListType, list *array.List) arrow.Array {
	lb := array.NewListBuilderWithField(mem, dt.ElemField())
	defer lb.Release()
	vb := lb.ValueBuilder().(*array.BinaryBuilder)
	src := list.ListValues().(*array.Binary)
	set := hashset.NewStrings()
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
			v := src.Value(int(j))
			if set.InsertBytes(v) {
				vb.Append(v)
			}
		}
	}
	return lb.NewArray()
}

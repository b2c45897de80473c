package distinct

import (
	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/bitutil"
	"github.com/apache/arrow/go/v15/arrow/memory"
)

// assemble builds the output list column from the finalized per row offsets
// and the deduplicated child values. offsets carries one leading zero, valid
// is nil when no row is null.
func assemble(mem memory.Allocator, dt *arrow.ListType, offsets []int32, valid []bool, nulls int, values arrow.Array) *array.List {
	offsetsBuf := memory.NewResizableBuffer(mem)
	offsetsBuf.Resize(arrow.Int32Traits.BytesRequired(len(offsets)))
	copy(arrow.Int32Traits.CastFromBytes(offsetsBuf.Bytes()), offsets)
	defer offsetsBuf.Release()

	var nullBuf *memory.Buffer
	if nulls > 0 {
		nullBuf = memory.NewResizableBuffer(mem)
		nullBuf.Resize(int(bitutil.BytesForBits(int64(len(valid)))))
		for i, ok := range valid {
			bitutil.SetBitTo(nullBuf.Bytes(), i, ok)
		}
		defer nullBuf.Release()
	}

	data := array.NewData(dt, len(offsets)-1,
		[]*memory.Buffer{nullBuf, offsetsBuf},
		[]arrow.ArrayData{values.Data()}, nulls, 0)
	defer data.Release()
	return array.NewListData(data)
}

package distinct

import (
	"context"
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/compute"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/dgryski/go-farm"
	"github.com/goccy/go-json"
	"github.com/vinceanalytics/funcs/hashset"
)

type oneMarshaler interface {
	GetOneForMarshal(i int) interface{}
}

// execHashed handles every element kind without a specialized comparison:
// each value's serialized representation is fingerprinted to 128 bits and the
// fingerprint stands in for the value's identity. Two distinct values that
// collide within a row are treated as duplicates, the width makes that
// astronomically unlikely rather than impossible. First seen positions are
// gathered and the originals copied out in one take, never reconstructed from
// the hash.
func execHashed(ctx context.Context, mem memory.Allocator, dt *arrow.ListType, list *array.List) (arrow.Array, error) {
	src := list.ListValues()
	m, ok := src.(oneMarshaler)
	if !ok {
		return nil, fmt.Errorf("distinct: cannot serialize %s values for hashing", src.DataType())
	}
	idx := array.NewUint32Builder(mem)
	defer idx.Release()
	offsets := make([]int32, 1, list.Len()+1)
	var valid []bool
	if list.NullN() > 0 {
		valid = make([]bool, list.Len())
	}
	set := hashset.New[[2]uint64](func(k [2]uint64) uint64 { return k[0] })
	length := int32(0)
	nulls := 0
	for i := 0; i < list.Len(); i++ {
		if list.IsNull(i) {
			nulls++
			offsets = append(offsets, length)
			continue
		}
		if valid != nil {
			valid[i] = true
		}
		set.Clear()
		start, end := list.ValueOffsets(i)
		for j := start; j < end; j++ {
			if src.IsNull(int(j)) {
				continue
			}
			data, err := json.Marshal(m.GetOneForMarshal(int(j)))
			if err != nil {
				return nil, err
			}
			lo, hi := farm.Fingerprint128(data)
			if set.Insert([2]uint64{lo, hi}) {
				idx.Append(uint32(j))
				length++
			}
		}
		offsets = append(offsets, length)
	}
	take := idx.NewUint32Array()
	defer take.Release()
	taken, err := takeIndices(ctx, mem, src, take)
	if err != nil {
		return nil, err
	}
	defer taken.Release()
	return assemble(mem, dt, offsets, valid, nulls, taken), nil
}

// takeIndices copies the values at idx out of a. Dictionary columns are
// regathered by hand, the take kernel does not cover them: the dictionary
// values stay as they are whatever their type, only the index array is
// rebuilt.
func takeIndices(ctx context.Context, mem memory.Allocator, a arrow.Array, idx *array.Uint32) (arrow.Array, error) {
	if a.DataType().ID() != arrow.DICTIONARY {
		return compute.TakeArray(ctx, a, idx)
	}
	x := a.(*array.Dictionary)
	dt := a.DataType().(*arrow.DictionaryType)
	ib := array.NewBuilder(mem, dt.IndexType)
	defer ib.Release()
	for _, i := range idx.Uint32Values() {
		if err := appendDictIndex(ib, x.GetValueIndex(int(i))); err != nil {
			return nil, err
		}
	}
	indices := ib.NewArray()
	defer indices.Release()
	return array.NewDictionaryArray(dt, indices, x.Dictionary()), nil
}

func appendDictIndex(b array.Builder, v int) error {
	switch b := b.(type) {
	case *array.Uint8Builder:
		b.Append(uint8(v))
	case *array.Uint16Builder:
		b.Append(uint16(v))
	case *array.Uint32Builder:
		b.Append(uint32(v))
	case *array.Uint64Builder:
		b.Append(uint64(v))
	case *array.Int8Builder:
		b.Append(int8(v))
	case *array.Int16Builder:
		b.Append(int16(v))
	case *array.Int32Builder:
		b.Append(int32(v))
	case *array.Int64Builder:
		b.Append(int64(v))
	default:
		return fmt.Errorf("distinct: unsupported dictionary index builder %T", b)
	}
	return nil
}

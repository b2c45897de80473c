package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/goccy/go-json"
)

// readColumn decodes newline delimited JSON arrays into one list column. A
// line holding null becomes a null row, a null element becomes a null entry.
func readColumn(mem memory.Allocator, r io.Reader, elem string) (*array.List, error) {
	var rows [][]any
	var nullRows []bool
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<24)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if bytes.Equal(line, []byte("null")) {
			rows = append(rows, nil)
			nullRows = append(nullRows, true)
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		var row []any
		if err := dec.Decode(&row); err != nil {
			return nil, fmt.Errorf("line %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
		nullRows = append(nullRows, false)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if elem == "auto" {
		var err error
		if elem, err = inferElem(rows); err != nil {
			return nil, err
		}
	}
	return buildColumn(mem, elem, rows, nullRows)
}

func inferElem(rows [][]any) (string, error) {
	elem := ""
	integral := true
	for _, row := range rows {
		for _, v := range row {
			var kind string
			switch v := v.(type) {
			case nil:
				continue
			case string:
				kind = "str"
			case bool:
				kind = "bool"
			case json.Number:
				kind = "num"
				if _, err := v.Int64(); err != nil {
					integral = false
				}
			default:
				return "", fmt.Errorf("unsupported element %T", v)
			}
			if elem == "" {
				elem = kind
			} else if elem != kind {
				return "", fmt.Errorf("mixed element types %s and %s", elem, kind)
			}
		}
	}
	switch elem {
	case "num":
		if integral {
			return "i64", nil
		}
		return "f64", nil
	case "":
		return "i64", nil
	}
	return elem, nil
}

func buildColumn(mem memory.Allocator, elem string, rows [][]any, nullRows []bool) (*array.List, error) {
	var dt arrow.DataType
	switch elem {
	case "i64":
		dt = arrow.PrimitiveTypes.Int64
	case "f64":
		dt = arrow.PrimitiveTypes.Float64
	case "str":
		dt = arrow.BinaryTypes.String
	case "bool":
		dt = arrow.FixedWidthTypes.Boolean
	default:
		return nil, fmt.Errorf("unsupported element type %q", elem)
	}
	lb := array.NewListBuilder(mem, dt)
	defer lb.Release()
	vb := lb.ValueBuilder()
	for i, row := range rows {
		if nullRows[i] {
			lb.AppendNull()
			continue
		}
		lb.Append(true)
		for _, v := range row {
			if v == nil {
				vb.AppendNull()
				continue
			}
			if err := appendValue(vb, v); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}
	return lb.NewArray().(*array.List), nil
}

func appendValue(b array.Builder, v any) error {
	switch b := b.(type) {
	case *array.Int64Builder:
		n, ok := v.(json.Number)
		if !ok {
			return fmt.Errorf("expected number, got %T", v)
		}
		i, err := n.Int64()
		if err != nil {
			return err
		}
		b.Append(i)
	case *array.Float64Builder:
		n, ok := v.(json.Number)
		if !ok {
			return fmt.Errorf("expected number, got %T", v)
		}
		f, err := n.Float64()
		if err != nil {
			return err
		}
		b.Append(f)
	case *array.StringBuilder:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		b.Append(s)
	case *array.BooleanBuilder:
		t, ok := v.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", v)
		}
		b.Append(t)
	default:
		return fmt.Errorf("%T is not a supported builder", b)
	}
	return nil
}

// writeColumn prints one JSON array per row.
func writeColumn(w io.Writer, a arrow.Array) error {
	list, ok := a.(*array.List)
	if !ok {
		return fmt.Errorf("expected list column, got %s", a.DataType())
	}
	bw := bufio.NewWriter(w)
	values := list.ListValues()
	for i := 0; i < list.Len(); i++ {
		if list.IsNull(i) {
			bw.WriteString("null\n")
			continue
		}
		start, end := list.ValueOffsets(i)
		row := array.NewSlice(values, start, end)
		data, err := json.Marshal(row)
		row.Release()
		if err != nil {
			return err
		}
		bw.Write(data)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

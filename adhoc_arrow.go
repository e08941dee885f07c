package xmladiscover

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/kent-id/xmladiscover/types"
)

func arrowType(t types.WireType) arrow.DataType {
	switch {
	case t == types.Boolean:
		return arrow.FixedWidthTypes.Boolean
	case t == types.Double:
		return arrow.PrimitiveTypes.Float64
	case t == types.DateTime:
		return arrow.FixedWidthTypes.Timestamp_s
	case t.IsInteger():
		return arrow.PrimitiveTypes.Int64
	}
	return arrow.BinaryTypes.String
}

// ArrowTable copies the rowset into an Arrow table. The caller releases it.
func (m *MetadataRowset) ArrowTable(mem memory.Allocator) arrow.Table {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	fields := make([]arrow.Field, len(m.Headers))
	for i, h := range m.Headers {
		fields[i] = arrow.Field{Name: h, Type: arrowType(m.Types[i]), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	columns := make([]arrow.Column, len(fields))
	for i, field := range fields {
		builder := array.NewBuilder(mem, field.Type)
		for _, row := range m.Rows {
			appendCell(builder, row[i])
		}
		arr := builder.NewArray()
		chunked := arrow.NewChunked(field.Type, []arrow.Array{arr})
		columns[i] = *arrow.NewColumn(field, chunked)
		arr.Release()
		chunked.Release()
		builder.Release()
	}

	table := array.NewTable(schema, columns, int64(len(m.Rows)))
	for i := range columns {
		columns[i].Release()
	}
	return table
}

func appendCell(builder array.Builder, v interface{}) {
	if v == nil {
		builder.AppendNull()
		return
	}
	switch b := builder.(type) {
	case *array.BooleanBuilder:
		if x, ok := v.(bool); ok {
			b.Append(x)
			return
		}
	case *array.Int64Builder:
		if n, ok := asInt64(v); ok {
			b.Append(n)
			return
		}
	case *array.Float64Builder:
		switch x := v.(type) {
		case float64:
			b.Append(x)
			return
		case float32:
			b.Append(float64(x))
			return
		}
		if n, ok := asInt64(v); ok {
			b.Append(float64(n))
			return
		}
	case *array.TimestampBuilder:
		if t, ok := v.(time.Time); ok {
			b.Append(arrow.Timestamp(t.Unix()))
			return
		}
	case *array.StringBuilder:
		b.Append(types.FormatScalar(v))
		return
	}
	LogWarnf("cannot store %T in an arrow %s column", v, builder.Type())
	builder.AppendNull()
}

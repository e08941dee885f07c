package xmladiscover

import (
	"fmt"
	"strings"

	"github.com/kent-id/xmladiscover/types"
)

type ValueKind int

const (
	NullValue ValueKind = iota
	ScalarValue
	ListValue
	NestedValue
)

// Value is one cell of a row: null, a scalar, a list of scalars, or the rows
// of a nested rowset.
type Value struct {
	kind   ValueKind
	scalar interface{}
	list   []interface{}
	nested *Rowset
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == NullValue
}

func (v Value) Scalar() interface{} {
	return v.scalar
}

func (v Value) List() []interface{} {
	return v.list
}

func (v Value) Nested() *Rowset {
	return v.nested
}

// Interface returns the scalar, the list or the nested rowset held, or nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case ScalarValue:
		return v.scalar
	case ListValue:
		return v.list
	case NestedValue:
		return v.nested
	}
	return nil
}

// Text flattens the value: lists join with sep, nested rowsets and nulls give "".
func (v Value) Text(sep string) string {
	switch v.kind {
	case ScalarValue:
		return types.FormatScalar(v.scalar)
	case ListValue:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = types.FormatScalar(item)
		}
		return strings.Join(parts, sep)
	}
	return ""
}

func newValue(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case *Rowset:
		if x == nil {
			return Value{}
		}
		return Value{kind: NestedValue, nested: x}
	case []string:
		list := make([]interface{}, len(x))
		for i, s := range x {
			list[i] = s
		}
		return Value{kind: ListValue, list: list}
	case []interface{}:
		return Value{kind: ListValue, list: x}
	}
	return Value{kind: ScalarValue, scalar: v}
}

// Row is an ordered set of cells, one per column of its kind.
type Row struct {
	kind   *RowsetKind
	values []Value
	set    []bool
}

func newRow(kind *RowsetKind) *Row {
	return &Row{
		kind:   kind,
		values: make([]Value, len(kind.columns)),
		set:    make([]bool, len(kind.columns)),
	}
}

// Set assigns a column once. Unknown columns and second assignments are
// programming errors and panic.
func (r *Row) Set(name string, v interface{}) {
	idx := r.kind.columnIndex(name)
	if idx < 0 {
		panic(fmt.Sprintf("xmladiscover: column %s not declared in rowset kind %s", name, r.kind.name))
	}
	if r.set[idx] {
		panic(fmt.Sprintf("xmladiscover: column %s.%s set twice", r.kind.name, name))
	}
	r.set[idx] = true
	r.values[idx] = newValue(v)
}

// Get returns the value of a column; unknown columns read as null.
func (r *Row) Get(name string) Value {
	if idx := r.kind.columnIndex(name); idx >= 0 {
		return r.values[idx]
	}
	return Value{}
}

// Values returns the cells aligned with the kind's columns.
func (r *Row) Values() []Value {
	return append([]Value(nil), r.values...)
}

func (r *Row) Kind() *RowsetKind {
	return r.kind
}

// Rowset is the result of populating one kind.
type Rowset struct {
	Kind *RowsetKind
	Rows []*Row
}

package xmladiscover

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kent-id/xmladiscover/types"
	"golang.org/x/text/cases"
)

// sortRows orders rows in place by the kind's sort columns. Rows equal on
// every sort column keep their traversal order.
func sortRows(kind *RowsetKind, rows []*Row) {
	if len(kind.sortColumns) == 0 || len(rows) < 2 {
		return
	}
	slices.SortStableFunc(rows, newRowComparator(kind.sortColumns))
}

// newRowComparator compares rows column by column; nulls sort first and
// strings compare case-insensitively.
func newRowComparator(columns []*Column) func(a, b *Row) int {
	fold := cases.Fold()
	return func(a, b *Row) int {
		for _, c := range columns {
			if d := compareValues(fold, a.Get(c.Name), b.Get(c.Name)); d != 0 {
				return d
			}
		}
		return 0
	}
}

func compareValues(fold cases.Caser, a, b Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return -1
	case b.IsNull():
		return 1
	}
	if a.Kind() != ScalarValue || b.Kind() != ScalarValue {
		return strings.Compare(fold.String(a.Text(",")), fold.String(b.Text(",")))
	}
	return compareScalars(fold, a.Scalar(), b.Scalar())
}

func compareScalars(fold cases.Caser, a, b interface{}) int {
	if x, ok := asInt64(a); ok {
		if y, ok := asInt64(b); ok {
			return cmp.Compare(x, y)
		}
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(fold.String(x), fold.String(y))
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			}
			return 1
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case uuid.UUID:
		if y, ok := b.(uuid.UUID); ok {
			return strings.Compare(x.String(), y.String())
		}
	}
	return strings.Compare(fold.String(types.FormatScalar(a)), fold.String(types.FormatScalar(b)))
}

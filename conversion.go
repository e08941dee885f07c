package xmladiscover

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kent-id/xmladiscover/types"
	"github.com/pkg/errors"
)

// castRestrictionValue parses a textual restriction value into the scalar a
// row of column c would carry.
func castRestrictionValue(value string, c *Column) (interface{}, error) {
	if c.Enumeration != nil {
		constant, ok := c.Enumeration.Lookup(value)
		if !ok {
			return nil, errors.Errorf("%q is not a constant of enumeration %s", value, c.Enumeration.Name)
		}
		if c.valuesByName() {
			return constant.Name, nil
		}
		return int64(constant.Ordinal), nil
	}

	data := strings.TrimSpace(value)
	switch c.Type {
	case types.Boolean:
		return strconv.ParseBool(data)
	case types.Integer, types.Short, types.Long:
		return strconv.ParseInt(data, 10, 64)
	case types.UnsignedInteger, types.UnsignedShort, types.UnsignedLong:
		v, err := strconv.ParseUint(data, 10, 64)
		if err != nil {
			return nil, err
		}
		if v <= math.MaxInt64 {
			return int64(v), nil
		}
		return v, nil
	case types.Double:
		return strconv.ParseFloat(data, 64)
	case types.DateTime:
		return time.Parse(types.DateTimeLayout, data)
	case types.UUID:
		return uuid.Parse(strings.Trim(data, "{}"))
	case types.RowSet:
		return nil, errors.Errorf("column %s cannot be restricted", c.Name)
	default:
		return value, nil
	}
}

// comparableKey folds a scalar into a form usable as a map key so that
// values of different Go integer widths compare equal.
func comparableKey(v interface{}) interface{} {
	if n, ok := asInt64(v); ok {
		return n
	}
	switch x := v.(type) {
	case float32:
		return float64(x)
	case time.Time:
		return x.Format(types.DateTimeLayout)
	}
	return v
}

func asInt64(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x), true
		}
	}
	return 0, false
}

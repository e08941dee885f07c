package types

import (
	"fmt"
	"strconv"
	"time"
)

// DateTimeLayout is the layout used for DATE_TIME values on the wire.
const DateTimeLayout = "2006-01-02T15:04:05"

// WireType is the protocol-level type of a rowset column or enumeration.
type WireType int

const (
	String WireType = iota
	StringArray
	Array
	Enumeration
	EnumerationArray
	EnumString
	Boolean
	Integer
	UnsignedInteger
	Double
	DateTime
	RowSet
	Short
	UUID
	UnsignedShort
	Long
	UnsignedLong
	StringSometimesArray
)

type wireTypeInfo struct {
	name string
	xsd  string
}

var wireTypes = [...]wireTypeInfo{
	String:               {"STRING", "xsd:string"},
	StringArray:          {"STRING_ARRAY", "xsd:string"},
	Array:                {"ARRAY", "xsd:string"},
	Enumeration:          {"ENUMERATION", "xsd:string"},
	EnumerationArray:     {"ENUMERATION_ARRAY", "xsd:string"},
	EnumString:           {"ENUM_STRING", "xsd:string"},
	Boolean:              {"BOOLEAN", "xsd:boolean"},
	Integer:              {"INTEGER", "xsd:int"},
	UnsignedInteger:      {"UNSIGNED_INTEGER", "xsd:unsignedInt"},
	Double:               {"DOUBLE", "xsd:double"},
	DateTime:             {"DATE_TIME", "xsd:dateTime"},
	RowSet:               {"ROW_SET", ""},
	Short:                {"SHORT", "xsd:short"},
	UUID:                 {"UUID", "uuid"},
	UnsignedShort:        {"UNSIGNED_SHORT", "xsd:unsignedShort"},
	Long:                 {"LONG", "xsd:long"},
	UnsignedLong:         {"UNSIGNED_LONG", "xsd:unsignedLong"},
	StringSometimesArray: {"STRING_SOMETIMES_ARRAY", "xsd:string"},
}

// AllWireTypes lists every wire type in declaration order.
func AllWireTypes() []WireType {
	all := make([]WireType, len(wireTypes))
	for i := range wireTypes {
		all[i] = WireType(i)
	}
	return all
}

func (t WireType) valid() bool {
	return t >= 0 && int(t) < len(wireTypes)
}

func (t WireType) String() string {
	if !t.valid() {
		return fmt.Sprintf("WireType(%d)", int(t))
	}
	return wireTypes[t].name
}

// XSDType returns the XML Schema type name, or "" for ROW_SET which has none.
func (t WireType) XSDType() string {
	if !t.valid() {
		return ""
	}
	return wireTypes[t].xsd
}

// IsEnum reports whether values of this type are constants of an enumeration.
func (t WireType) IsEnum() bool {
	switch t {
	case Enumeration, EnumerationArray, EnumString:
		return true
	}
	return false
}

// IsList reports whether a value of this type may carry several items.
func (t WireType) IsList() bool {
	switch t {
	case StringArray, Array, EnumerationArray, StringSometimesArray:
		return true
	}
	return false
}

// IsInteger reports whether the type holds whole numbers.
func (t WireType) IsInteger() bool {
	switch t {
	case Integer, UnsignedInteger, Short, UnsignedShort, Long, UnsignedLong:
		return true
	}
	return false
}

// FormatScalar renders a scalar cell value as wire text.
func FormatScalar(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(DateTimeLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

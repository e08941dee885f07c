package xmladiscover

import "github.com/kent-id/xmladiscover/olap"

// OLE DB type indicators reported in DATA_TYPE columns.
const (
	dbTypeI4   = 3
	dbTypeR8   = 5
	dbTypeCY   = 6
	dbTypeBool = 11
	dbTypeVar  = 12
	dbTypeUI2  = 18
	dbTypeUI4  = 19
	dbTypeI8   = 20
	dbTypeWStr = 130
)

type providerType struct {
	name          string
	dataType      int
	columnSize    int
	literalPrefix string
	literalSuffix string
}

var providerTypes = []providerType{
	{"INTEGER", dbTypeI4, 8, "", ""},
	{"DOUBLE", dbTypeR8, 16, "", ""},
	{"CURRENCY", dbTypeCY, 8, "", ""},
	{"BOOLEAN", dbTypeBool, 1, "", ""},
	{"LARGE_INTEGER", dbTypeI8, 16, "", ""},
	{"STRING", dbTypeWStr, 255, "\"", "\""},
}

// dbTypeOfProperty maps a member property type to the DATA_TYPE reported for it.
func dbTypeOfProperty(t olap.PropertyDataType) int {
	switch t {
	case olap.PropertyInteger, olap.PropertyUnsignedInteger, olap.PropertyDouble, olap.PropertyNumeric:
		return dbTypeR8
	case olap.PropertyBoolean:
		return dbTypeBool
	}
	return dbTypeWStr
}

// dbTypeOfMeasure maps a measure's declared data type to DATA_TYPE.
func dbTypeOfMeasure(dataType string) int {
	switch dataType {
	case "Integer":
		return dbTypeI4
	case "Numeric":
		return dbTypeR8
	}
	return dbTypeWStr
}

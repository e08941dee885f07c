package olap

// DimensionType classifies a dimension.
type DimensionType int

const (
	DimensionUnknown DimensionType = iota
	DimensionTime
	DimensionMeasure
	DimensionOther
)

// Code is the MD_DIMTYPE value reported on the wire.
func (t DimensionType) Code() int {
	return int(t)
}

func (t DimensionType) String() string {
	switch t {
	case DimensionTime:
		return "TIME"
	case DimensionMeasure:
		return "MEASURE"
	case DimensionOther:
		return "OTHER"
	}
	return "UNKNOWN"
}

// HierarchyStructure is the MD_STRUCTURE code of a hierarchy.
type HierarchyStructure int

const (
	StructureFullyBalanced HierarchyStructure = iota
	StructureRaggedBalanced
	StructureUnbalanced
	StructureNetwork
)

// LevelType is a bit set of MDLEVEL_TYPE flags.
type LevelType int

const (
	LevelRegular         LevelType = 0x0000
	LevelAll             LevelType = 0x0001
	LevelCalculated      LevelType = 0x0002
	LevelTime            LevelType = 0x0004
	LevelReserved        LevelType = 0x0008
	LevelTimeYears       LevelType = 0x0014
	LevelTimeHalfYear    LevelType = 0x0024
	LevelTimeQuarters    LevelType = 0x0044
	LevelTimeMonths      LevelType = 0x0084
	LevelTimeWeeks       LevelType = 0x0104
	LevelTimeDays        LevelType = 0x0204
	LevelTimeHours       LevelType = 0x0304
	LevelTimeMinutes     LevelType = 0x0404
	LevelTimeSeconds     LevelType = 0x0804
	LevelTimeUndefined   LevelType = 0x1004
	LevelGeoContinent    LevelType = 0x2001
	LevelGeoRegion       LevelType = 0x2002
	LevelGeoCountry      LevelType = 0x2003
	LevelGeoStateProv    LevelType = 0x2004
	LevelGeoCounty       LevelType = 0x2005
	LevelGeoCity         LevelType = 0x2006
	LevelGeoPostalCode   LevelType = 0x2007
	LevelGeoPoint        LevelType = 0x2008
	LevelOrgUnit         LevelType = 0x1011
	LevelBOMResource     LevelType = 0x1012
	LevelQuantitative    LevelType = 0x1013
	LevelAccount         LevelType = 0x1014
	LevelScenario        LevelType = 0x1015
	LevelUtility         LevelType = 0x1016
	LevelCustomer        LevelType = 0x1021
	LevelCustomerGroup   LevelType = 0x1022
	LevelCustomerHouse   LevelType = 0x1023
	LevelProduct         LevelType = 0x1031
	LevelProductGroup    LevelType = 0x1032
	LevelPromotion       LevelType = 0x1041
	LevelCurrencySource  LevelType = 0x1051
	LevelCurrencyDest    LevelType = 0x1052
	LevelChannel         LevelType = 0x1061
	LevelRepresentative  LevelType = 0x1062
	LevelNullPlaceholder LevelType = 0x1071
)

var levelTypeNames = map[string]LevelType{
	"regular":         LevelRegular,
	"all":             LevelAll,
	"calculated":      LevelCalculated,
	"time":            LevelTime,
	"time_years":      LevelTimeYears,
	"time_half_years": LevelTimeHalfYear,
	"time_quarters":   LevelTimeQuarters,
	"time_months":     LevelTimeMonths,
	"time_weeks":      LevelTimeWeeks,
	"time_days":       LevelTimeDays,
	"time_hours":      LevelTimeHours,
	"time_minutes":    LevelTimeMinutes,
	"time_seconds":    LevelTimeSeconds,
	"time_undefined":  LevelTimeUndefined,
	"geo_continent":   LevelGeoContinent,
	"geo_region":      LevelGeoRegion,
	"geo_country":     LevelGeoCountry,
	"geo_state":       LevelGeoStateProv,
	"geo_county":      LevelGeoCounty,
	"geo_city":        LevelGeoCity,
	"geo_postal_code": LevelGeoPostalCode,
	"geo_point":       LevelGeoPoint,
	"org_unit":        LevelOrgUnit,
	"customer":        LevelCustomer,
	"customer_group":  LevelCustomerGroup,
	"product":         LevelProduct,
	"product_group":   LevelProductGroup,
	"promotion":       LevelPromotion,
	"channel":         LevelChannel,
}

// ParseLevelType looks up a level type by its lower-case name, e.g. "time_years".
func ParseLevelType(name string) (LevelType, bool) {
	t, ok := levelTypeNames[name]
	return t, ok
}

// IsAll reports whether the level holds the single all member.
func (t LevelType) IsAll() bool {
	return t&LevelAll != 0 && t&0x2000 == 0 && t&0x1000 == 0
}

// MemberType is the MDMEMBER_TYPE code of a member.
type MemberType int

const (
	MemberUnknown MemberType = iota
	MemberRegular
	MemberAll
	MemberMeasure
	MemberFormula
)

// Aggregator is the MDMEASURE_AGGR code of a measure.
type Aggregator int

const (
	AggregatorUnknown       Aggregator = 0
	AggregatorSum           Aggregator = 1
	AggregatorCount         Aggregator = 2
	AggregatorMin           Aggregator = 3
	AggregatorMax           Aggregator = 4
	AggregatorAvg           Aggregator = 5
	AggregatorVar           Aggregator = 6
	AggregatorStd           Aggregator = 7
	AggregatorDistinctCount Aggregator = 8
	AggregatorCalculated    Aggregator = 127
)

var aggregatorNames = map[string]Aggregator{
	"sum":            AggregatorSum,
	"count":          AggregatorCount,
	"min":            AggregatorMin,
	"max":            AggregatorMax,
	"avg":            AggregatorAvg,
	"var":            AggregatorVar,
	"std":            AggregatorStd,
	"distinct-count": AggregatorDistinctCount,
	"distinct count": AggregatorDistinctCount,
}

// ParseAggregator maps a schema aggregator name ("sum", "distinct-count", ...)
// to its code. Unrecognised names give AggregatorUnknown.
func ParseAggregator(name string) Aggregator {
	return aggregatorNames[name]
}

// PropertyDataType is the declared type of a member property.
type PropertyDataType int

const (
	PropertyString PropertyDataType = iota
	PropertyInteger
	PropertyUnsignedInteger
	PropertyDouble
	PropertyNumeric
	PropertyBoolean
	PropertyDateTime
)

var propertyDataTypeNames = map[string]PropertyDataType{
	"string":           PropertyString,
	"integer":          PropertyInteger,
	"unsigned_integer": PropertyUnsignedInteger,
	"double":           PropertyDouble,
	"numeric":          PropertyNumeric,
	"boolean":          PropertyBoolean,
	"datetime":         PropertyDateTime,
}

// ParsePropertyDataType maps a lower-case type name to a PropertyDataType.
func ParsePropertyDataType(name string) (PropertyDataType, bool) {
	t, ok := propertyDataTypeNames[name]
	return t, ok
}

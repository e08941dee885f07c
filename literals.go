package xmladiscover

// literal is one row of DISCOVER_LITERALS.
type literal struct {
	name                 string
	value                string
	invalidChars         string
	invalidStartingChars string
	maxLength            int
	enumValue            int
}

var literals = []literal{
	{"CATALOG_NAME", "", ".", "0123456789", 24, 2},
	{"CATALOG_SEPARATOR", ".", "", "", 0, 3},
	{"COLUMN_ALIAS", "", "'\"[]", "0123456789", -1, 5},
	{"COLUMN_NAME", "", ".", "0123456789", -1, 6},
	{"CORRELATION_NAME", "", "'\"[]", "0123456789", -1, 7},
	{"CUBE_NAME", "", ".", "0123456789", -1, 21},
	{"DIMENSION_NAME", "", ".", "0123456789", -1, 22},
	{"HIERARCHY_NAME", "", ".", "0123456789", -1, 23},
	{"LEVEL_NAME", "", ".", "0123456789", -1, 24},
	{"MEMBER_NAME", "", ".", "0123456789", -1, 25},
	{"PROCEDURE_NAME", "", ".", "0123456789", -1, 14},
	{"PROPERTY_NAME", "", ".", "0123456789", -1, 26},
	{"QUOTE", "[", "", "", -1, 15},
	{"QUOTE_SUFFIX", "]", "", "", -1, 28},
	{"TABLE_NAME", "", ".", "0123456789", -1, 17},
	{"TEXT_COMMAND", "", "", "", -1, 18},
	{"USER_NAME", "", "", "", 0, 19},
}

const literalPrefix = "DBLITERAL_"

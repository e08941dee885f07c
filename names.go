package xmladiscover

// Column names shared by several rowset kinds.
const (
	colCatalogName         = "CATALOG_NAME"
	colSchemaName          = "SCHEMA_NAME"
	colCubeName            = "CUBE_NAME"
	colCubeSource          = "CUBE_SOURCE"
	colDescription         = "DESCRIPTION"
	colDimensionName       = "DIMENSION_NAME"
	colDimensionUniqueName = "DIMENSION_UNIQUE_NAME"
	colDimensionType       = "DIMENSION_TYPE"
	colDimensionIsVisible  = "DIMENSION_IS_VISIBLE"
	colDimensionVisibility = "DIMENSION_VISIBILITY"
	colHierarchyName       = "HIERARCHY_NAME"
	colHierarchyUniqueName = "HIERARCHY_UNIQUE_NAME"
	colLevelName           = "LEVEL_NAME"
	colLevelUniqueName     = "LEVEL_UNIQUE_NAME"
	colLevelNumber         = "LEVEL_NUMBER"
	colMemberName          = "MEMBER_NAME"
	colMemberUniqueName    = "MEMBER_UNIQUE_NAME"
	colMemberOrdinal       = "MEMBER_ORDINAL"
	colMeasuregroupName    = "MEASUREGROUP_NAME"
	colTableCatalog        = "TABLE_CATALOG"
	colTableSchema         = "TABLE_SCHEMA"
	colTableName           = "TABLE_NAME"
	colTableType           = "TABLE_TYPE"
	colDataType            = "DATA_TYPE"
	colNumericPrecision    = "NUMERIC_PRECISION"
	colNumericScale        = "NUMERIC_SCALE"
	colCharMaxLength       = "CHARACTER_MAXIMUM_LENGTH"
	colCharOctetLength     = "CHARACTER_OCTET_LENGTH"
	colTreeOp              = "TREE_OP"
	colPropertyType        = "PROPERTY_TYPE"
	colExpression          = "EXPRESSION"
	colIsWriteEnabled      = "IS_WRITE_ENABLED"
	colDateModified        = "DATE_MODIFIED"
)

// Nested rowset columns.
const (
	colDimensions  = "DIMENSIONS"
	colSets        = "SETS"
	colMeasures    = "MEASURES"
	colHierarchies = "HIERARCHIES"
	colLevels      = "LEVELS"
)

// Rowset kind names.
const (
	KindDiscoverDatasources           = "DISCOVER_DATASOURCES"
	KindDiscoverSchemaRowsets         = "DISCOVER_SCHEMA_ROWSETS"
	KindDiscoverEnumerators           = "DISCOVER_ENUMERATORS"
	KindDiscoverProperties            = "DISCOVER_PROPERTIES"
	KindDiscoverKeywords              = "DISCOVER_KEYWORDS"
	KindDiscoverLiterals              = "DISCOVER_LITERALS"
	KindDiscoverXMLMetadata           = "DISCOVER_XML_METADATA"
	KindDBSchemaCatalogs              = "DBSCHEMA_CATALOGS"
	KindDBSchemaColumns               = "DBSCHEMA_COLUMNS"
	KindDBSchemaProviderTypes         = "DBSCHEMA_PROVIDER_TYPES"
	KindDBSchemaSchemata              = "DBSCHEMA_SCHEMATA"
	KindDBSchemaTables                = "DBSCHEMA_TABLES"
	KindDBSchemaSourceTables          = "DBSCHEMA_SOURCE_TABLES"
	KindDBSchemaTablesInfo            = "DBSCHEMA_TABLES_INFO"
	KindMDSchemaActions               = "MDSCHEMA_ACTIONS"
	KindMDSchemaCubes                 = "MDSCHEMA_CUBES"
	KindMDSchemaDimensions            = "MDSCHEMA_DIMENSIONS"
	KindMDSchemaFunctions             = "MDSCHEMA_FUNCTIONS"
	KindMDSchemaHierarchies           = "MDSCHEMA_HIERARCHIES"
	KindMDSchemaKPIs                  = "MDSCHEMA_KPIS"
	KindMDSchemaLevels                = "MDSCHEMA_LEVELS"
	KindMDSchemaMeasuregroupDimension = "MDSCHEMA_MEASUREGROUP_DIMENSIONS"
	KindMDSchemaMeasuregroups         = "MDSCHEMA_MEASUREGROUPS"
	KindMDSchemaMeasures              = "MDSCHEMA_MEASURES"
	KindMDSchemaMembers               = "MDSCHEMA_MEMBERS"
	KindMDSchemaProperties            = "MDSCHEMA_PROPERTIES"
	KindMDSchemaSets                  = "MDSCHEMA_SETS"
)

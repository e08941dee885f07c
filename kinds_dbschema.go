package xmladiscover

import (
	"github.com/kent-id/xmladiscover/types"
)

var tableSortColumns = []string{colTableType, colTableCatalog, colTableSchema, colTableName}

func dbschemaKinds() []kindDefinition {
	return []kindDefinition{
		{
			name:        KindDBSchemaCatalogs,
			guid:        "C8B52211-5CF3-11CE-ADE5-00AA0044773D",
			description: "Identifies the physical attributes associated with catalogs accessible from the provider.",
			columns: []*Column{
				newColumn(colCatalogName, types.String, "Catalog name. Cannot be NULL.", restriction),
				newColumn(colDescription, types.String, "Human-readable description of the catalog.", optional),
				newColumn("ROLES", types.String, "A comma delimited list of roles to which the current user belongs.", optional),
				newColumn(colDateModified, types.DateTime, "The date that the catalog was last modified.", optional),
			},
			sortBy:          []string{colCatalogName},
			needsConnection: true,
			populate:        populateCatalogs,
		},
		{
			name:        KindDBSchemaColumns,
			guid:        "C8B52214-5CF3-11CE-ADE5-00AA0044773D",
			description: "Returns the columns of tables accessible through the provider.",
			columns: []*Column{
				newColumn(colTableCatalog, types.String, "The name of the Database.", restriction),
				newColumn(colTableSchema, types.String, "The name of the schema.", restriction, optional),
				newColumn(colTableName, types.String, "The name of the cube.", restriction),
				newColumn("COLUMN_NAME", types.String, "The name of the attribute hierarchy or measure.", restriction),
				newColumn("COLUMN_GUID", types.UUID, "Not supported.", optional),
				newColumn("COLUMN_PROPID", types.UnsignedInteger, "Not supported.", optional),
				newColumn("ORDINAL_POSITION", types.UnsignedInteger, "The position of the column, beginning with 1."),
				newColumn("COLUMN_HAS_DEFAULT", types.Boolean, "Not supported.", optional),
				newColumn("COLUMN_DEFAULT", types.String, "Not supported.", optional),
				newColumn("COLUMN_FLAGS", types.UnsignedInteger, "A DBCOLUMNFLAGS bitmask indicating column properties."),
				newColumn("IS_NULLABLE", types.Boolean, "Always returns false."),
				newColumn(colDataType, types.UnsignedShort, "The data type of the column. Returns a string for dimension columns and a variant for measures."),
				newColumn("TYPE_GUID", types.UUID, "Not supported.", optional),
				newColumn(colCharMaxLength, types.UnsignedInteger, "The maximum possible length of a value within the column.", optional),
				newColumn(colCharOctetLength, types.UnsignedInteger, "The maximum possible length of a value within the column, in bytes, for character or binary columns.", optional),
				newColumn(colNumericPrecision, types.UnsignedShort, "The maximum precision of the column for numeric data types other than DBTYPE_VARNUMERIC.", optional),
				newColumn(colNumericScale, types.Short, "The number of digits to the right of the decimal point for DBTYPE_DECIMAL, DBTYPE_NUMERIC, DBTYPE_VARNUMERIC. Otherwise, this is NULL.", optional),
				newColumn("COLUMN_OLAP_TYPE", types.String, "The OLAP type of the object: MEASURE or ATTRIBUTE.", restriction, optional),
			},
			sortBy:          []string{colTableCatalog, colTableSchema, colTableName},
			needsConnection: true,
			populate:        populateColumns,
		},
		{
			name:        KindDBSchemaProviderTypes,
			guid:        "C8B5222C-5CF3-11CE-ADE5-00AA0044773D",
			description: "Identifies the (base) data types supported by the data provider.",
			columns: []*Column{
				newColumn("TYPE_NAME", types.String, "The provider-specific data type name."),
				newColumn(colDataType, types.UnsignedShort, "The indicator of the data type.", restriction),
				newColumn("COLUMN_SIZE", types.UnsignedInteger, "The length of a non-numeric column or parameter that refers to the maximum or the length defined for this type by the provider."),
				newColumn("LITERAL_PREFIX", types.String, "The character or characters used to prefix a literal of this type in a text command.", optional),
				newColumn("LITERAL_SUFFIX", types.String, "The character or characters used to suffix a literal of this type in a text command.", optional),
				newColumn("CREATE_PARAMS", types.String, "The creation parameters specified by the consumer when creating a column of this data type.", optional),
				newColumn("IS_NULLABLE", types.Boolean, "A Boolean that indicates whether the data type is nullable.", optional),
				newColumn("CASE_SENSITIVE", types.Boolean, "A Boolean that indicates whether the data type is a characters type and case-sensitive.", optional),
				newColumn("SEARCHABLE", types.UnsignedInteger, "An integer indicating how the data type can be used in searches if the provider supports ICommandText.", optional),
				newColumn("UNSIGNED_ATTRIBUTE", types.Boolean, "A Boolean that indicates whether the data type is unsigned.", optional),
				newColumn("FIXED_PREC_SCALE", types.Boolean, "A Boolean that indicates whether the data type has a fixed precision and scale.", optional),
				newColumn("AUTO_UNIQUE_VALUE", types.Boolean, "A Boolean that indicates whether the data type is autoincrementing.", optional),
				newColumn("LOCAL_TYPE_NAME", types.String, "The localized version of TYPE_NAME.", optional),
				newColumn("MINIMUM_SCALE", types.Short, "The minimum number of digits allowed to the right of the decimal point.", optional),
				newColumn("MAXIMUM_SCALE", types.Short, "The maximum number of digits allowed to the right of the decimal point.", optional),
				newColumn("GUID", types.UUID, "Not supported.", optional),
				newColumn("TYPELIB", types.String, "Not supported.", optional),
				newColumn("VERSION", types.String, "Not supported.", optional),
				newColumn("IS_LONG", types.Boolean, "A Boolean that indicates whether the data type is a binary large object (BLOB) and has very long data.", optional),
				newColumn("BEST_MATCH", types.Boolean, "A Boolean that indicates whether the data type is a best match.", restriction, optional),
				newColumn("IS_FIXEDLENGTH", types.Boolean, "A Boolean that indicates whether the column is fixed in length.", optional),
			},
			sortBy:   []string{colDataType},
			populate: populateProviderTypes,
		},
		{
			name:        KindDBSchemaSchemata,
			guid:        "C8B52225-5CF3-11CE-ADE5-00AA0044773D",
			description: "Identifies the schemas that are owned by a given user.",
			columns: []*Column{
				newColumn(colCatalogName, types.String, "The name of the catalog that owns the schema.", restriction),
				newColumn(colSchemaName, types.String, "The name of the schema.", restriction),
				newColumn("SCHEMA_OWNER", types.String, "The user that owns the schema.", restriction, optional),
			},
			sortBy:          []string{colCatalogName, colSchemaName},
			needsConnection: true,
			populate:        populateSchemata,
		},
		{
			name:        KindDBSchemaTables,
			guid:        "C8B52229-5CF3-11CE-ADE5-00AA0044773D",
			description: "Returns dimensions, measure groups or schema rowsets exposed as tables.",
			columns: []*Column{
				newColumn(colTableCatalog, types.String, "The name of the catalog to which this object belongs.", restriction),
				newColumn(colTableSchema, types.String, "The name of the cube to which this object belongs.", restriction, optional),
				newColumn(colTableName, types.String, "The name of the object, if TABLE_TYPE is TABLE.", restriction),
				newColumn(colTableType, types.String, "The type of the table. TABLE indicates the object is a measure group. SYSTEM TABLE indicates the object is a dimension.", restriction),
				newColumn("TABLE_GUID", types.UUID, "Not supported.", optional),
				newColumn(colDescription, types.String, "A human-readable description of the object.", optional),
				newColumn("TABLE_PROPID", types.UnsignedInteger, "Not supported.", optional),
				newColumn("DATE_CREATED", types.DateTime, "Not supported.", optional),
				newColumn(colDateModified, types.DateTime, "The date the object was last modified.", optional),
			},
			sortBy:          tableSortColumns,
			needsConnection: true,
			populate:        populateTables,
		},
		{
			name:        KindDBSchemaSourceTables,
			description: "Returns the tables of the relational store backing the current catalog.",
			columns: []*Column{
				newColumn(colTableCatalog, types.String, "Catalog name. NULL if the provider does not support catalogs.", restriction, optional),
				newColumn(colTableSchema, types.String, "Unqualified schema name. NULL if the provider does not support schemas.", restriction, optional),
				newColumn(colTableName, types.String, "Table name.", restriction),
				newColumn(colTableType, types.String, "Table type. One of the following or a provider-specific value: ALIAS, TABLE, SYNONYM, SYSTEM TABLE, VIEW, GLOBAL TEMPORARY, LOCAL TEMPORARY, EXTERNAL TABLE, SYSTEM VIEW", restriction),
			},
			sortBy:          tableSortColumns,
			needsConnection: true,
			populate:        populateSourceTables,
		},
		{
			name:        KindDBSchemaTablesInfo,
			guid:        "C8B522E0-5CF3-11CE-ADE5-00AA0044773D",
			description: "Returns information about the tables exposed by the provider.",
			columns: []*Column{
				newColumn(colTableCatalog, types.String, "Catalog name. NULL if the provider does not support catalogs.", restriction, optional),
				newColumn(colTableSchema, types.String, "Unqualified schema name. NULL if the provider does not support schemas.", restriction, optional),
				newColumn(colTableName, types.String, "Table name.", restriction),
				newColumn(colTableType, types.String, "Table type. One of the following or a provider-specific value: ALIAS, TABLE, SYNONYM, SYSTEM TABLE, VIEW, GLOBAL TEMPORARY, LOCAL TEMPORARY, EXTERNAL TABLE, SYSTEM VIEW", restriction),
				newColumn("TABLE_GUID", types.UUID, "GUID that uniquely identifies the table. Providers that do not use GUIDs to identify tables should return NULL in this column.", optional),
				newColumn("BOOKMARKS", types.Boolean, "Whether this table supports bookmarks. Always false."),
				newColumn("BOOKMARK_TYPE", types.Integer, "Default bookmark type supported on this table.", optional),
				newColumn("BOOKMARK_DATATYPE", types.UnsignedShort, "The indicator of the bookmark's native data type.", optional),
				newColumn("BOOKMARK_MAXIMUM_LENGTH", types.UnsignedInteger, "Maximum length of the bookmark in bytes.", optional),
				newColumn("BOOKMARK_INFORMATION", types.UnsignedInteger, "A bitmask specifying additional information about bookmarks over the rowset.", optional),
				newColumn("TABLE_VERSION", types.Long, "Version number for this table or NULL if the provider does not support returning table version information.", optional),
				newColumn("CARDINALITY", types.UnsignedLong, "Cardinality (number of rows) of the table."),
				newColumn(colDescription, types.String, "Human-readable description of the table.", optional),
				newColumn("TABLE_PROPID", types.UnsignedInteger, "Property ID of the table. Return null.", optional),
			},
			sortBy:          tableSortColumns,
			needsConnection: true,
			populate:        populateTablesInfo,
		},
	}
}

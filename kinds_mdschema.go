package xmladiscover

import (
	"github.com/kent-id/xmladiscover/types"
)

func cubeSourceColumn() *Column {
	return newColumn(colCubeSource, types.Enumeration,
		"A bitmap with one of the following valid values: 1 CUBE, 2 DIMENSION. Default restriction is a value of 1.",
		enumerated(enumCubeSource), restriction, bitmask, optional)
}

func visibilityColumn(name string) *Column {
	return newColumn(name, types.Enumeration,
		"A bitmap with one of the following valid values: 1 Visible, 2 Not visible.",
		enumerated(enumVisibility), restriction, bitmask, optional)
}

func catalogColumn() *Column {
	return newColumn(colCatalogName, types.String, "The name of the database.", restriction, optional)
}

func schemaColumn() *Column {
	return newColumn(colSchemaName, types.String, "Not supported.", restriction, optional)
}

func cubeColumn() *Column {
	return newColumn(colCubeName, types.String, "The name of the cube.", restriction)
}

func mdschemaKinds() []kindDefinition {
	cubeKeys := []string{colCatalogName, colSchemaName, colCubeName}
	return []kindDefinition{
		{
			name:        KindMDSchemaActions,
			guid:        "A07CCD08-8148-11D0-87BB-00C04FC33942",
			description: "Describes the actions that may be available to the client application.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn("ACTION_NAME", types.String, "The name of the action.", restriction),
				newColumn("ACTION_TYPE", types.Integer, "A bitmap that is used to specify the triggering method of the action.", restriction, optional),
				newColumn("COORDINATE", types.String, "An MDX expression that specifies an object or a coordinate in the multidimensional space.", restriction),
				newColumn("COORDINATE_TYPE", types.Integer, "A value that specifies how the COORDINATE restriction column is interpreted.", restriction),
				newColumn("ACTION_CAPTION", types.String, "The action caption."),
				newColumn(colDescription, types.String, "A user-friendly description of the action.", optional),
				newColumn("CONTENT", types.String, "The expression or content of the action that is to be run.", optional),
				newColumn("APPLICATION", types.String, "The name of the application that is to be used to run the action.", optional),
				newColumn("INVOCATION", types.Integer, "Information about how to invoke the action.", restriction, optional),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, "ACTION_NAME"},
			needsConnection: true,
			populate:        populateNothing,
		},
		{
			name:        KindMDSchemaCubes,
			guid:        "C8B522D8-5CF3-11CE-ADE5-00AA0044773D",
			description: "Describes the structure of cubes.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn("CUBE_TYPE", types.String, "Cube type: CUBE or VIRTUAL CUBE.", restriction),
				newColumn("CUBE_GUID", types.UUID, "Cube GUID.", optional),
				newColumn("CREATED_ON", types.DateTime, "Date and time of cube creation.", optional),
				newColumn("LAST_SCHEMA_UPDATE", types.DateTime, "Date and time of last schema update.", optional),
				newColumn("SCHEMA_UPDATED_BY", types.String, "User ID of the person who last updated the schema.", optional),
				newColumn("LAST_DATA_UPDATE", types.DateTime, "Date and time of last data update.", optional),
				newColumn("DATA_UPDATED_BY", types.String, "User ID of the person who last updated the data.", optional),
				newColumn("IS_DRILLTHROUGH_ENABLED", types.Boolean, "Describes whether DRILLTHROUGH can be performed on the members of a cube"),
				newColumn(colIsWriteEnabled, types.Boolean, "Describes whether a cube is write-enabled"),
				newColumn("IS_LINKABLE", types.Boolean, "Describes whether a cube can be used in a linked cube"),
				newColumn("IS_SQL_ENABLED", types.Boolean, "Describes whether or not SQL can be used on the cube"),
				newColumn("CUBE_CAPTION", types.String, "The caption of the cube.", optional),
				newColumn(colDescription, types.String, "A user-friendly description of the cube.", optional),
				newColumn(colDimensions, types.RowSet, "Dimensions in this cube.", optional),
				newColumn(colSets, types.RowSet, "Sets in this cube.", optional),
				newColumn(colMeasures, types.RowSet, "Measures in this cube.", optional),
				newColumn("BASE_CUBE_NAME", types.String, "The name of the source cube if this cube is a perspective cube.", restriction, optional),
				newColumn(colCubeSource, types.Enumeration, "A bitmap with one of the following valid values: 1 CUBE, 2 DIMENSION. Default restriction is a value of 1.",
					enumerated(enumCubeSource), restriction, bitmask, optional, restrictionOrder(99)),
			},
			sortBy:          cubeKeys,
			needsConnection: true,
			populate:        populateCubes,
		},
		{
			name:        KindMDSchemaDimensions,
			guid:        "C8B522D9-5CF3-11CE-ADE5-00AA0044773D",
			description: "Describes the dimensions within a database.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colDimensionName, types.String, "The name of the dimension.", restriction),
				newColumn(colDimensionUniqueName, types.String, "The unique name of the dimension.", restriction),
				newColumn("DIMENSION_GUID", types.UUID, "Not supported.", optional),
				newColumn("DIMENSION_CAPTION", types.String, "The caption of the dimension."),
				newColumn("DIMENSION_ORDINAL", types.UnsignedInteger, "The position of the dimension within the cube."),
				newColumn(colDimensionType, types.Short, "The type of the dimension."),
				newColumn("DIMENSION_CARDINALITY", types.UnsignedInteger, "The number of members in the key attribute."),
				newColumn("DEFAULT_HIERARCHY", types.String, "A hierarchy from the dimension. Preserved for backwards compatibility."),
				newColumn(colDescription, types.String, "A user-friendly description of the dimension.", optional),
				newColumn("IS_VIRTUAL", types.Boolean, "Always FALSE.", optional),
				newColumn("IS_READWRITE", types.Boolean, "A Boolean that indicates whether the dimension is write-enabled.", optional),
				newColumn("DIMENSION_UNIQUE_SETTINGS", types.Integer, "A bitmap that specifies which columns contain unique values if the dimension contains only members with unique names.", optional),
				newColumn("DIMENSION_MASTER_UNIQUE_NAME", types.String, "Always NULL.", optional),
				newColumn(colDimensionIsVisible, types.Boolean, "Always TRUE.", optional),
				newColumn(colHierarchies, types.RowSet, "Hierarchies in this dimension.", optional),
				cubeSourceColumn(),
				visibilityColumn(colDimensionVisibility),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, colDimensionName},
			needsConnection: true,
			populate:        populateDimensions,
		},
		{
			name:        KindMDSchemaFunctions,
			guid:        "A07CCD07-8148-11D0-87BB-00C04FC33942",
			description: "Returns information about the functions that are currently available for use in the DAX and MDX languages.",
			columns: []*Column{
				newColumn("FUNCTION_NAME", types.String, "The name of the function.", restriction),
				newColumn(colDescription, types.String, "A description of the function.", optional),
				newColumn("PARAMETER_LIST", types.String, "A comma delimited list of parameters."),
				newColumn("RETURN_TYPE", types.Integer, "The VARTYPE of the return data type of the function."),
				newColumn("ORIGIN", types.Integer, "The origin of the function:  1 for MDX functions.  2 for user-defined functions.", restriction),
				newColumn("INTERFACE_NAME", types.String, "The name of the interface for user-defined functions", restriction),
				newColumn("LIBRARY_NAME", types.String, "The name of the type library for user-defined functions. NULL for MDX functions.", restriction, optional),
				newColumn("DLL_NAME", types.String, "The name of the assembly that implements the user-defined function.", optional),
				newColumn("HELP_FILE", types.String, "The name of the file that contains the help documentation for the user-defined function.", optional),
				newColumn("HELP_CONTEXT", types.Integer, "Returns the Help context ID for this function.", optional),
				newColumn("OBJECT", types.String, "The generic name of the object class to which a property applies.", optional),
				newColumn("CAPTION", types.String, "The display caption for the function."),
			},
			sortBy:   []string{"LIBRARY_NAME", "INTERFACE_NAME", "FUNCTION_NAME", "ORIGIN"},
			populate: populateFunctions,
		},
		{
			name:        KindMDSchemaHierarchies,
			guid:        "C8B522DA-5CF3-11CE-ADE5-00AA0044773D",
			description: "Describes each hierarchy within a particular dimension.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colDimensionUniqueName, types.String, "The unique name of the dimension to which this hierarchy belongs.", restriction),
				newColumn(colHierarchyName, types.String, "The name of the hierarchy. Blank if there is only a single hierarchy in the dimension.", restriction),
				newColumn(colHierarchyUniqueName, types.String, "The unique name of the hierarchy.", restriction),
				newColumn("HIERARCHY_GUID", types.UUID, "Hierarchy GUID.", optional),
				newColumn("HIERARCHY_CAPTION", types.String, "A label or a caption associated with the hierarchy."),
				newColumn(colDimensionType, types.Short, "The type of the dimension."),
				newColumn("HIERARCHY_CARDINALITY", types.UnsignedInteger, "The number of members in the hierarchy."),
				newColumn("DEFAULT_MEMBER", types.String, "The default member for this hierarchy.", optional),
				newColumn("ALL_MEMBER", types.String, "The member at the highest level of rollup in the hierarchy.", optional),
				newColumn(colDescription, types.String, "A human-readable description of the hierarchy. NULL if no description exists.", optional),
				newColumn("STRUCTURE", types.Short, "The structure of the hierarchy."),
				newColumn("IS_VIRTUAL", types.Boolean, "Always returns False."),
				newColumn("IS_READWRITE", types.Boolean, "A Boolean that indicates whether the Write Back to dimension column is enabled."),
				newColumn("DIMENSION_UNIQUE_SETTINGS", types.Integer, "Always returns MDDIMENSIONS_MEMBER_KEY_UNIQUE (1)."),
				newColumn(colDimensionIsVisible, types.Boolean, "A Boolean that indicates whether the parent dimension is visible."),
				newColumn("HIERARCHY_IS_VISIBLE", types.Boolean, "A Boolean that indicates whether the hierarchy is visible."),
				newColumn("HIERARCHY_ORDINAL", types.UnsignedInteger, "The ordinal number of the hierarchy across all hierarchies of the cube."),
				newColumn("DIMENSION_IS_SHARED", types.Boolean, "Always returns true."),
				newColumn("PARENT_CHILD", types.Boolean, "Is hierarchy a parent."),
				newColumn("HIERARCHY_DISPLAY_FOLDER", types.String, "The path to be used when displaying the hierarchy in the user interface.", optional),
				newColumn(colLevels, types.RowSet, "Levels in this hierarchy.", optional),
				cubeSourceColumn(),
				visibilityColumn("HIERARCHY_VISIBILITY"),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, colDimensionUniqueName, colHierarchyName},
			needsConnection: true,
			populate:        populateHierarchies,
		},
		{
			name:        KindMDSchemaKPIs,
			guid:        "2AE44109-ED3D-4842-B16F-B694D1CB0E3F",
			description: "Describes the key performance indicators (KPIs) within a database.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colMeasuregroupName, types.String, "The name of the associated measure group for the KPI.", restriction, optional),
				newColumn("KPI_NAME", types.String, "The name of the KPI.", restriction),
				newColumn("KPI_CAPTION", types.String, "A label or caption associated with the KPI.", optional),
				newColumn("KPI_DESCRIPTION", types.String, "A description of the KPI.", optional),
				newColumn("KPI_DISPLAY_FOLDER", types.String, "A string that identifies the path of the display folder.", optional),
				newColumn("KPI_VALUE", types.String, "The unique name of the member in the measures dimension for the KPI Value.", optional),
				newColumn("KPI_GOAL", types.String, "The unique name of the member in the measures dimension for the KPI Goal.", optional),
				newColumn("KPI_STATUS", types.String, "The unique name of the member in the measures dimension for the KPI Status.", optional),
				newColumn("KPI_TREND", types.String, "The unique name of the member in the measures dimension for the KPI Trend.", optional),
				newColumn("KPI_STATUS_GRAPHIC", types.String, "The default graphical representation of the KPI status.", optional),
				newColumn("KPI_TREND_GRAPHIC", types.String, "The default graphical representation of the KPI trend.", optional),
				newColumn("KPI_WEIGHT", types.String, "The unique name of the member in the measures dimension for the KPI Weight.", optional),
				newColumn("KPI_CURRENT_TIME_MEMBER", types.String, "The unique name of the member in the time dimension that defines the temporal context of the KPI.", optional),
				newColumn("KPI_PARENT_KPI_NAME", types.String, "The name of the parent KPI.", optional),
				newColumn("SCOPE", types.Integer, "The scope of the KPI.", optional),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, colMeasuregroupName, "KPI_NAME"},
			needsConnection: true,
			populate:        populateNothing,
		},
		{
			name:        KindMDSchemaLevels,
			guid:        "C8B522DB-5CF3-11CE-ADE5-00AA0044773D",
			description: "Returns rowset containing information about the levels available in a dimension.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colDimensionUniqueName, types.String, "The unique name of the dimension to which this level belongs.", restriction),
				newColumn(colHierarchyUniqueName, types.String, "The unique name of the hierarchy.", restriction),
				newColumn(colLevelName, types.String, "The name of the level.", restriction),
				newColumn(colLevelUniqueName, types.String, "The properly escaped unique name of the level.", restriction),
				newColumn("LEVEL_GUID", types.UUID, "Level GUID.", optional),
				newColumn("LEVEL_CAPTION", types.String, "A label or caption associated with the hierarchy."),
				newColumn(colLevelNumber, types.UnsignedInteger, "The distance of the level from the root of the hierarchy. Root level is zero (0)."),
				newColumn("LEVEL_CARDINALITY", types.UnsignedInteger, "The number of members in the level. This value can be an approximation of the real cardinality."),
				newColumn("LEVEL_TYPE", types.Integer, "Type of the level"),
				newColumn(colDescription, types.String, "A human-readable description of the level. NULL if no description exists.", optional),
				newColumn("CUSTOM_ROLLUP_SETTINGS", types.Integer, "A bitmap that specifies the custom rollup options."),
				newColumn("LEVEL_UNIQUE_SETTINGS", types.Integer, "A bitmap that specifies which columns contain unique values, if the level only has members with unique names or keys."),
				newColumn("LEVEL_IS_VISIBLE", types.Boolean, "A Boolean that indicates whether the level is visible."),
				newColumn("LEVEL_ORDERING_PROPERTY", types.String, "The ID of the attribute that the level is sorted on.", optional),
				newColumn("LEVEL_DBTYPE", types.Integer, "The DBTYPE enumeration of the member key column that is used for the level attribute.", optional),
				newColumn("LEVEL_MASTER_UNIQUE_NAME", types.String, "Always returns NULL.", optional),
				newColumn("LEVEL_KEY_CARDINALITY", types.UnsignedShort, "The number of columns in the level key.", optional),
				newColumn("LEVEL_ORIGIN", types.UnsignedShort, "A bit map that defines how the level was sourced.", optional),
				cubeSourceColumn(),
				visibilityColumn("LEVEL_VISIBILITY"),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, colDimensionUniqueName, colHierarchyUniqueName, colLevelNumber},
			needsConnection: true,
			populate:        populateLevels,
		},
		{
			name:        KindMDSchemaMeasuregroupDimension,
			guid:        "A07CCD33-8148-11D0-87BB-00C04FC33942",
			description: "Describes the shared dimensions within a database.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colMeasuregroupName, types.String, "The name of the measure group.", restriction),
				newColumn("MEASUREGROUP_CARDINALITY", types.String, "The number of instances a measure in the measure group can have for a single dimension member.", optional),
				newColumn(colDimensionUniqueName, types.String, "The unique name of the dimension.", restriction),
				newColumn("DIMENSION_CARDINALITY", types.String, "The number of instances a dimension member can have for a single instance of a measure group measure.", optional),
				newColumn(colDimensionIsVisible, types.Boolean, "A Boolean that indicates whether hieararchies in the dimension are visible."),
				newColumn("DIMENSION_IS_FACT_DIMENSION", types.Boolean, "A Boolean that indicates whether the dimension is a fact dimension."),
				newColumn("DIMENSION_PATH", types.String, "A list of dimensions for the reference dimension.", optional),
				newColumn("DIMENSION_GRANULARITY", types.String, "The unique name of the granularity hierarchy.", optional),
				visibilityColumn(colDimensionVisibility),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, colMeasuregroupName, colDimensionUniqueName},
			needsConnection: true,
			populate:        populateMeasuregroupDimensions,
		},
		{
			name:        KindMDSchemaMeasuregroups,
			guid:        "E1625EBF-FA96-42FD-BEA6-DB90ADAFD96B",
			description: "Describes the measure groups within a database.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colMeasuregroupName, types.String, "The name of the measure group.", restriction),
				newColumn(colDescription, types.String, "A human-readable description of the measure group.", optional),
				newColumn(colIsWriteEnabled, types.Boolean, "A Boolean that indicates whether the measure group is write-enabled."),
				newColumn("MEASUREGROUP_CAPTION", types.String, "A label or caption associated with the measure group."),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, colMeasuregroupName},
			needsConnection: true,
			populate:        populateMeasuregroups,
		},
		{
			name:        KindMDSchemaMeasures,
			guid:        "C8B522DC-5CF3-11CE-ADE5-00AA0044773D",
			description: "Returns information about the available measures.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn("MEASURE_NAME", types.String, "The name of the measure.", restriction),
				newColumn("MEASURE_UNIQUE_NAME", types.String, "The Unique name of the measure.", restriction),
				newColumn("MEASURE_CAPTION", types.String, "A label or caption associated with the measure."),
				newColumn("MEASURE_GUID", types.UUID, "Measure GUID.", optional),
				newColumn("MEASURE_AGGREGATOR", types.Integer, "How a measure was derived."),
				newColumn(colDataType, types.UnsignedShort, "Data type of the measure."),
				newColumn(colNumericPrecision, types.UnsignedShort, "The maximum precision of the column for numeric data types other than DBTYPE_VARNUMERIC.", optional),
				newColumn(colNumericScale, types.Short, "The number of digits to the right of the decimal point for DBTYPE_DECIMAL, DBTYPE_NUMERIC, DBTYPE_VARNUMERIC.", optional),
				newColumn("MEASURE_UNITS", types.String, "Not supported.", optional),
				newColumn(colDescription, types.String, "A human-readable description of the measure.", optional),
				newColumn(colExpression, types.String, "An expression for the member.", optional),
				newColumn("MEASURE_IS_VISIBLE", types.Boolean, "A Boolean that always returns True. If the measure is not visible, it will not be included in the schema rowset."),
				newColumn("LEVELS_LIST", types.String, "A string that always returns NULL. EXCEPT that SQL Server returns non-null values!!!", optional),
				newColumn("MEASURE_UNQUALIFIED_CAPTION", types.String, "The caption of the measure without the names of its containers.", optional),
				newColumn(colMeasuregroupName, types.String, "The name of the measure group to which the measure belongs.", optional),
				newColumn("MEASURE_DISPLAY_FOLDER", types.String, "The path to be used when displaying the measure in the user interface.", optional),
				newColumn("DEFAULT_FORMAT_STRING", types.String, "The default format string for the measure.", optional),
				cubeSourceColumn(),
				visibilityColumn("MEASURE_VISIBILITY"),
			},
			sortBy:          []string{colCatalogName, colSchemaName, colCubeName, "MEASURE_NAME"},
			needsConnection: true,
			populate:        populateMeasures,
		},
		{
			name:        KindMDSchemaMembers,
			guid:        "C8B522DE-5CF3-11CE-ADE5-00AA0044773D",
			description: "Describes the members within a database.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn(colDimensionUniqueName, types.String, "Unique name of the dimension to which the member belongs.", restriction),
				newColumn(colHierarchyUniqueName, types.String, "Unique name of the hierarchy. If the member belongs to more than one hierarchy, there is one row for each hierarchy to which it belongs.", restriction),
				newColumn(colLevelUniqueName, types.String, "Unique name of the level to which the member belongs.", restriction),
				newColumn(colLevelNumber, types.UnsignedInteger, "The distance of the member from the root of the hierarchy.", restriction),
				newColumn(colMemberOrdinal, types.UnsignedInteger, "Ordinal number of the member. Sort rank of the member when members of this dimension are sorted in their natural sort order."),
				newColumn(colMemberName, types.String, "Name of the member.", restriction),
				newColumn(colMemberUniqueName, types.String, "Unique name of the member.", restriction, consumed),
				newColumn("MEMBER_TYPE", types.Integer, "Type of the member.", restriction),
				newColumn("MEMBER_GUID", types.UUID, "Member GUID.", optional),
				newColumn("MEMBER_CAPTION", types.String, "A label or caption associated with the member.", restriction),
				newColumn("CHILDREN_CARDINALITY", types.UnsignedInteger, "Number of children that the member has."),
				newColumn("PARENT_LEVEL", types.UnsignedInteger, "The distance of the member's parent from the root level of the hierarchy."),
				newColumn("PARENT_UNIQUE_NAME", types.String, "Unique name of the member's parent.", optional),
				newColumn("PARENT_COUNT", types.UnsignedInteger, "Number of parents that this member has."),
				newColumn(colTreeOp, types.Enumeration, "Tree Operation", enumerated(enumTreeOp), restriction, consumed, optional),
				newColumn("DEPTH", types.Integer, "depth", optional),
				newColumn(colDescription, types.String, "A human-readable description of the member.", optional),
				newColumn(colExpression, types.String, "The expression for calculations, if the member is of type MDMEMBER_TYPE_FORMULA.", optional),
				newColumn("MEMBER_KEY", types.String, "The value of the member's key column.", optional),
				newColumn("IS_PLACEHOLDERMEMBER", types.Boolean, "Whether the member is a placeholder member for an empty position in a dimension hierarchy.", optional),
				newColumn("IS_DATAMEMBER", types.Boolean, "Whether the member is a data member.", optional),
				cubeSourceColumn(),
			},
			sortBy: []string{colCatalogName, colSchemaName, colCubeName, colDimensionUniqueName, colHierarchyUniqueName,
				colLevelUniqueName, colLevelNumber, colMemberOrdinal},
			needsConnection: true,
			populate:        populateMembers,
		},
		{
			name:        KindMDSchemaProperties,
			guid:        "C8B522DD-5CF3-11CE-ADE5-00AA0044773D",
			description: "Returns a list of properties for member or cell.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				newColumn(colCubeName, types.String, "The name of the cube.", restriction, optional),
				newColumn(colDimensionUniqueName, types.String, "The unique name of the dimension.", restriction, optional),
				newColumn(colHierarchyUniqueName, types.String, "The unique name of the hierarchy.", restriction, optional),
				newColumn(colLevelUniqueName, types.String, "The unique name of the level to which this property belongs.", restriction, optional),
				newColumn(colMemberUniqueName, types.String, "The unique name of the member to which the property belongs.", restriction, consumed, optional),
				newColumn(colPropertyType, types.Enumeration, "A bitmap that specifies the type of the property", enumerated(enumPropertyType), restriction, bitmask),
				newColumn("PROPERTY_NAME", types.String, "Name of the property.", restriction),
				newColumn("PROPERTY_CAPTION", types.String, "A label or caption associated with the property, used primarily for display purposes."),
				newColumn(colDataType, types.UnsignedShort, "Data type of the property."),
				newColumn(colCharMaxLength, types.UnsignedInteger, "The maximum possible length of the property, if it is a character, binary, or bit type.", optional),
				newColumn(colCharOctetLength, types.UnsignedInteger, "The maximum possible length (in bytes) of the property, if it is a character or binary type.", optional),
				newColumn(colNumericPrecision, types.UnsignedShort, "The maximum precision of the property, if the measure object's data type is exact numeric.", optional),
				newColumn(colNumericScale, types.Short, "The number of digits to the right of the decimal point, if the measure object's type indicator is DBTYPE_NUMERIC or DBTYPE_DECIMAL.", optional),
				newColumn(colDescription, types.String, "A human readable description of the property.", optional),
				newColumn("PROPERTY_CONTENT_TYPE", types.Short, "The type of the property.", restriction, optional),
				newColumn("SQL_COLUMN_NAME", types.String, "The name of the property used in SQL queries from the cube dimension or database dimension.", optional),
				newColumn("LANGUAGE", types.UnsignedShort, "The translation expressed as an LCID.", optional),
				newColumn("PROPERTY_ORIGIN", types.UnsignedShort, "Identifies the type of hierarchy that the property applies to.", restriction, optional),
				newColumn("PROPERTY_ATTRIBUTE_HIERARCHY_NAME", types.String, "The name of the attribute hierarchy sourcing this property.", optional),
				newColumn("PROPERTY_CARDINALITY", types.String, "The cardinality of the property. Possible values include the following strings: ONE, MANY", optional),
				newColumn("MIME_TYPE", types.String, "The mime type for binary large objects (BLOBs).", optional),
				newColumn("PROPERTY_IS_VISIBLE", types.Boolean, "A Boolean that indicates whether the property is visible.", optional),
				cubeSourceColumn(),
				visibilityColumn("PROPERTY_VISIBILITY"),
			},
			needsConnection: true,
			populate:        populateMDProperties,
		},
		{
			name:        KindMDSchemaSets,
			guid:        "A07CCD0B-8148-11D0-87BB-00C04FC33942",
			description: "Describes any sets that are currently defined in a database, including session-scoped sets.",
			columns: []*Column{
				catalogColumn(),
				schemaColumn(),
				cubeColumn(),
				newColumn("SET_NAME", types.String, "The name of the set, as specified in the CREATE SET statement.", restriction),
				newColumn("SCOPE", types.Integer, "The scope of the set. The set can be a session-defined set or a global-defined set.", restriction),
				newColumn(colDescription, types.String, "A human-readable description of the set.", optional),
				newColumn(colExpression, types.String, "The expression for the set.", optional),
				newColumn(colDimensions, types.String, "A comma delimited list of hierarchies included in the set.", optional),
				newColumn("SET_CAPTION", types.String, "A label or caption associated with the set.", optional),
				newColumn("SET_DISPLAY_FOLDER", types.String, "The path to be used when displaying the set in the user interface.", optional),
				newColumn("SET_EVALUATION_CONTEXT", types.Integer, "The context for the set: 1 static, 2 dynamic.", optional),
				cubeSourceColumn(),
			},
			sortBy:          cubeKeys,
			needsConnection: true,
			populate:        populateSets,
		},
	}
}

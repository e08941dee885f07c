package xmladiscover

import (
	"github.com/kent-id/xmladiscover/types"
)

func discoverKinds() []kindDefinition {
	return []kindDefinition{
		{
			name:        KindDiscoverDatasources,
			guid:        "06C03D41-F66D-49F3-B1B8-987F7AF4CF18",
			description: "Returns a list of XML for Analysis (XMLA) data sources available on the server or Web Service.",
			columns: []*Column{
				newColumn("DataSourceName", types.String, "The name of the data source, such as FoodMart 2000.", restriction),
				newColumn("DataSourceDescription", types.String, "A description of the data source, as entered by the publisher.", optional),
				newColumn("URL", types.String, "The unique path that shows where to invoke the XMLA methods for that data source.", restriction, optional),
				newColumn("DataSourceInfo", types.String, "A string containing any additional information required to connect to the data source.", optional),
				newColumn("ProviderName", types.String, "The name of the provider behind the data source.", restriction, optional),
				newColumn("ProviderType", types.EnumerationArray, "The types of data supported by the provider.", enumerated(enumProviderType), restriction, unbounded),
				newColumn("AuthenticationMode", types.EnumString, "Specification of what type of security mode the data source uses.", enumerated(enumAuthenticationMode), restriction),
			},
			populate: populateDatasources,
		},
		{
			name:        KindDiscoverSchemaRowsets,
			guid:        "EEA0302B-7922-4992-8991-0E605D0E5593",
			description: "Returns the names, values, and other information of all supported RequestType enumeration values.",
			columns: []*Column{
				newColumn("SchemaName", types.StringArray, "The name of the schema/request. This returns the values in the RequestTypes enumeration, plus any additional types supported by the provider.", restriction),
				newColumn("SchemaGuid", types.UUID, "The GUID of the schema.", optional),
				newColumn("Restrictions", types.Array, "An array of the restrictions supported by provider. An example follows this table.", optional),
				newColumn("Description", types.String, "A localizable description of the schema", optional),
				newColumn("RestrictionsMask", types.UnsignedLong, "Bitmap of the restrictions supported by the schema, in restriction order.", optional),
			},
			sortBy:   []string{"SchemaName"},
			populate: populateSchemaRowsets,
		},
		{
			name:        KindDiscoverEnumerators,
			guid:        "55A9E78B-ACCB-45B4-95A6-94C5065617A7",
			description: "Returns a list of names, data types, and enumeration values for enumerators supported by the provider of a specific data source.",
			columns: []*Column{
				newColumn("EnumName", types.StringArray, "Name of the enumerator that contains a set of values.", restriction),
				newColumn("EnumDescription", types.String, "A localizable description of the enumerator.", optional),
				newColumn("EnumType", types.String, "The data type of the Enum values."),
				newColumn("ElementName", types.String, "The name of one of the value elements in the enumerator set.\nExample: TDP"),
				newColumn("ElementDescription", types.String, "A localizable description of the element (optional).", optional),
				newColumn("ElementValue", types.String, "The value of the element.\nExample: 01", optional),
			},
			populate: populateEnumerators,
		},
		{
			name:        KindDiscoverProperties,
			guid:        "4B40ADFB-8B09-4758-97BB-636E8AE97BCF",
			description: "Returns a list of information and values about the requested properties that are supported by the specified data source provider.",
			columns: []*Column{
				newColumn("PropertyName", types.StringSometimesArray, "The name of the property.", restriction),
				newColumn("PropertyDescription", types.String, "A localizable text description of the property.", optional),
				newColumn("PropertyType", types.String, "The XML data type of the property.", optional),
				newColumn("PropertyAccessType", types.EnumString, "Access for the property. The value can be Read, Write, or ReadWrite.", enumerated(enumAccess)),
				newColumn("IsRequired", types.Boolean, "True if a property is required, false if it is not required.", optional),
				newColumn("Value", types.String, "The current value of the property.", optional),
			},
			populate: populateProperties,
		},
		{
			name:        KindDiscoverKeywords,
			guid:        "1426C443-4CDD-4A40-8F45-572FAB9BBAA1",
			description: "Returns an XML list of keywords reserved by the provider.",
			columns: []*Column{
				newColumn("Keyword", types.StringSometimesArray, "A list of all the keywords reserved by a provider.\nExample: AND", restriction),
			},
			populate: populateKeywords,
		},
		{
			name:        KindDiscoverLiterals,
			guid:        "C3EF5ECB-0A07-4665-A140-B075722DBDC2",
			description: "Returns information about literals supported by the provider.",
			columns: []*Column{
				newColumn("LiteralName", types.StringSometimesArray, "The name of the literal described in the row.\nExample: DBLITERAL_LIKE_PERCENT", restriction),
				newColumn("LiteralValue", types.String, "Contains the actual literal value.\nExample, if LiteralName is DBLITERAL_LIKE_PERCENT and the percent character (%) is used to match zero or more characters in a LIKE clause, this column's value would be \"%\".", optional),
				newColumn("LiteralInvalidChars", types.String, "The characters, in the literal, that are not valid.\nFor example, if table names can contain anything other than a numeric character, this string would be \"0123456789\".", optional),
				newColumn("LiteralInvalidStartingChars", types.String, "The characters that are not valid as the first character of the literal. If the literal can start with any valid character, this is null.", optional),
				newColumn("LiteralMaxLength", types.Integer, "The maximum number of characters in the literal. If there is no maximum or the maximum is unknown, the value is -1.", optional),
				newColumn("LiteralNameEnumValue", types.Integer, "The OLE DB literal enumeration value.", optional),
			},
			populate: populateLiterals,
		},
		{
			name:        KindDiscoverXMLMetadata,
			guid:        "3444B255-171E-4CB9-AD98-19E57888A75F",
			description: "Returns an XML document describing a requested object.",
			columns: []*Column{
				newColumn("METADATA", types.String, "An XML document that describes the object requested by the restriction."),
				newColumn("DatabaseID", types.String, "The name of the catalog whose schema document is returned.", restriction, optional),
			},
			needsConnection: true,
			populate:        populateXMLMetadata,
		},
	}
}

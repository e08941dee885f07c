package xmladiscover

// PropertyUsage tells in which methods a property may be sent.
type PropertyUsage int

const (
	UsageDiscover PropertyUsage = 1 << iota
	UsageExecute
	UsageBoth = UsageDiscover | UsageExecute
)

// PropertyDefinition is one request property reported by DISCOVER_PROPERTIES.
type PropertyDefinition struct {
	Name        string
	Description string
	// Type is the XML data type, such as "string" or "boolean".
	Type string
	// Access is a constant of the Access enumeration: Read, Write or ReadWrite.
	Access  string
	Default string
	Usage   PropertyUsage
}

// DefaultPropertyDefinitions lists the request properties the provider accepts.
func DefaultPropertyDefinitions() []PropertyDefinition {
	server := DefaultServerInfo()
	return []PropertyDefinition{
		{"AxisFormat", "Determines the format used within an MDDataSet result set to describe the axes of the multidimensional dataset.", "string", "Write", "TupleFormat", UsageExecute},
		{"BeginRange", "Contains a zero-based integer value corresponding to a CellOrdinal attribute value.", "int", "Write", "-1", UsageExecute},
		{PropertyCatalog, "When establishing a session with an Analysis Services instance to send an XMLA command, this property is equivalent to the OLE DB property, DBPROP_INIT_CATALOG.", "string", "ReadWrite", "", UsageBoth},
		{PropertyContent, "An enumerator that specifies what type of data is returned in the result set: None, Schema, Data or SchemaData.", "string", "Write", "SchemaData", UsageBoth},
		{"Cube", "The cube context for the Command parameter.", "string", "ReadWrite", "", UsageExecute},
		{PropertyDataSourceInfo, "A string containing provider specific information, required to access the data source.", "string", "ReadWrite", server.DataSourceInfo, UsageBoth},
		{PropertyDeep, "In an MDSCHEMA_CUBES request, whether to include members of dimensions, hierarchies and levels of the cube in the response.", "boolean", "ReadWrite", "false", UsageDiscover},
		{PropertyEmitInvisibleMembers, "Whether to include members whose visible property is false, or to include hidden dimensions and hierarchies.", "boolean", "ReadWrite", "false", UsageDiscover},
		{"EndRange", "An integer value corresponding to a CellOrdinal used to identify the last cell to return.", "int", "Write", "-1", UsageExecute},
		{PropertyFormat, "Enumerator that determines the format of the returned result set: Tabular or Multidimensional.", "string", "Write", "Native", UsageBoth},
		{"LocaleIdentifier", "Use this to read or set the numeric locale identifier for this request.", "unsignedInt", "ReadWrite", "", UsageBoth},
		{"MDXSupport", "Enumeration that describes the degree of MDX support.", "string", "Read", "Core", UsageDiscover},
		{"Password", "This property is deprecated in XMLA 1.1.", "string", "Read", "", UsageBoth},
		{"ProviderName", "The XMLA provider name.", "string", "Read", server.ProviderName, UsageDiscover},
		{"ProviderVersion", "The version of the provider.", "string", "Read", server.ProviderVersion, UsageDiscover},
		{"ResponseMimeType", "Accepts a MIME type to use for the response.", "string", "ReadWrite", "", UsageBoth},
		{"StateSupport", "Property that specifies the degree of support in the provider for state.", "string", "Read", "None", UsageDiscover},
		{"Timeout", "A numeric time-out specifying in seconds the amount of time to wait for a request to be successful.", "unsignedInt", "ReadWrite", "", UsageBoth},
		{"UserName", "Returns the UserName the server associates with the command.", "string", "Read", "", UsageBoth},
		{"VisualMode", "This property determines the default behavior for visual totals.", "string", "Write", "0", UsageBoth},
	}
}

package xmladiscover

// ServerInfo describes the single data source reported by DISCOVER_DATASOURCES.
type ServerInfo struct {
	DataSourceName        string
	DataSourceDescription string
	URL                   string
	DataSourceInfo        string
	ProviderName          string
	ProviderVersion       string
	ProviderTypes         []string
	AuthenticationMode    string
}

// DefaultServerInfo is used when no server description is configured.
func DefaultServerInfo() ServerInfo {
	return ServerInfo{
		DataSourceName:        "xmladiscover",
		DataSourceDescription: "XML for Analysis metadata discovery",
		URL:                   "http://localhost:8080/xmla",
		DataSourceInfo:        "Provider=xmladiscover",
		ProviderName:          "xmladiscover XML for Analysis Provider",
		ProviderVersion:       "1.0",
		ProviderTypes:         []string{"MDP"},
		AuthenticationMode:    "Unauthenticated",
	}
}

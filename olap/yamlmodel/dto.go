package yamlmodel

import "time"

// The yaml document. Boolean pointers default to true when absent.

type modelDoc struct {
	Catalogs []catalogDoc `yaml:"catalogs"`
	Roles    []roleDoc    `yaml:"roles"`
}

type roleDoc struct {
	Name string `yaml:"name"`
	// Catalogs the role may see; empty means all of them.
	Catalogs []string `yaml:"catalogs"`
	// Deny lists unique-name prefixes hidden from the role.
	Deny []string `yaml:"deny"`
}

type catalogDoc struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Schemas     []schemaDoc `yaml:"schemas"`
}

type schemaDoc struct {
	Name     string    `yaml:"name"`
	LoadTime time.Time `yaml:"load_time"`
	Cubes    []cubeDoc `yaml:"cubes"`
}

type cubeDoc struct {
	Name        string         `yaml:"name"`
	Caption     string         `yaml:"caption"`
	Description string         `yaml:"description"`
	Virtual     bool           `yaml:"virtual"`
	Visible     *bool          `yaml:"visible"`
	Dimensions  []dimensionDoc `yaml:"dimensions"`
	Measures    []measureDoc   `yaml:"measures"`
	Sets        []setDoc       `yaml:"sets"`
}

type dimensionDoc struct {
	Name        string         `yaml:"name"`
	Caption     string         `yaml:"caption"`
	Description string         `yaml:"description"`
	Type        string         `yaml:"type"`
	Visible     *bool          `yaml:"visible"`
	Hierarchies []hierarchyDoc `yaml:"hierarchies"`
}

type hierarchyDoc struct {
	Name          string      `yaml:"name"`
	Caption       string      `yaml:"caption"`
	Description   string      `yaml:"description"`
	Visible       *bool       `yaml:"visible"`
	HasAll        *bool       `yaml:"has_all"`
	AllMemberName string      `yaml:"all_member_name"`
	ParentChild   bool        `yaml:"parent_child"`
	DisplayFolder string      `yaml:"display_folder"`
	DefaultMember string      `yaml:"default_member"`
	Levels        []levelDoc  `yaml:"levels"`
	Members       []memberDoc `yaml:"members"`
}

type levelDoc struct {
	Name          string        `yaml:"name"`
	Caption       string        `yaml:"caption"`
	Description   string        `yaml:"description"`
	Type          string        `yaml:"type"`
	UniqueMembers bool          `yaml:"unique_members"`
	Visible       *bool         `yaml:"visible"`
	Properties    []propertyDoc `yaml:"properties"`
}

type propertyDoc struct {
	Name        string `yaml:"name"`
	Caption     string `yaml:"caption"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Visible     *bool  `yaml:"visible"`
}

type memberDoc struct {
	Name        string      `yaml:"name"`
	Caption     string      `yaml:"caption"`
	Description string      `yaml:"description"`
	Visible     *bool       `yaml:"visible"`
	Children    []memberDoc `yaml:"children"`
}

type measureDoc struct {
	Name          string `yaml:"name"`
	Caption       string `yaml:"caption"`
	Description   string `yaml:"description"`
	Aggregator    string `yaml:"aggregator"`
	DataType      string `yaml:"data_type"`
	FormatString  string `yaml:"format_string"`
	Formula       string `yaml:"formula"`
	DisplayFolder string `yaml:"display_folder"`
	Visible       *bool  `yaml:"visible"`
}

type setDoc struct {
	Name          string   `yaml:"name"`
	Caption       string   `yaml:"caption"`
	Description   string   `yaml:"description"`
	Expression    string   `yaml:"expression"`
	DisplayFolder string   `yaml:"display_folder"`
	Hierarchies   []string `yaml:"hierarchies"`
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

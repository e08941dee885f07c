// Package olap declares the read-only view of a multidimensional model that
// the rowset populators traverse. Implementations live elsewhere, see
// olap/yamlmodel for a file-backed one.
package olap

import (
	"context"
	"time"
)

// ConnectionSpec carries the request-level identity used to open a Connection.
type ConnectionSpec struct {
	Catalog   string
	Role      string
	Username  string
	Password  string
	SessionID string
}

// Connector opens connections to a model.
type Connector interface {
	Connect(ctx context.Context, spec ConnectionSpec) (Connection, error)
}

// Connection is a session over a model. A catalog's schemas can only be read
// after SetCatalog made that catalog current.
type Connection interface {
	Catalogs() ([]Catalog, error)
	SetCatalog(name string) error
	CanAccess(e Element) bool
	Close() error
}

// Element is the common face of cubes, dimensions, hierarchies, levels,
// members and sets.
type Element interface {
	Name() string
	UniqueName() string
	Caption() string
	Description() string
}

type Catalog interface {
	Name() string
	Description() string
	RoleNames() []string
	// SchemaDocument is the raw schema text the catalog was loaded from.
	SchemaDocument() string
	Schemas() ([]Schema, error)
}

type Schema interface {
	Name() string
	LoadTime() time.Time
	Cubes() ([]Cube, error)
}

type Cube interface {
	Element
	Virtual() bool
	Visible() bool
	Dimensions() ([]Dimension, error)
	Measures() ([]Measure, error)
	Sets() ([]NamedSet, error)
	// LookupMember returns nil without error when no member has the name.
	LookupMember(uniqueName string) (Member, error)
	// LookupLevel returns nil without error when no level has the name.
	LookupLevel(uniqueName string) (Level, error)
}

type Dimension interface {
	Element
	Type() DimensionType
	Visible() bool
	Hierarchies() ([]Hierarchy, error)
}

type Hierarchy interface {
	Element
	Dimension() Dimension
	Visible() bool
	HasAll() bool
	ParentChild() bool
	Structure() HierarchyStructure
	DisplayFolder() string
	Cardinality() int
	DefaultMember() (Member, error)
	RootMembers() ([]Member, error)
	Levels() ([]Level, error)
}

type Level interface {
	Element
	Hierarchy() Hierarchy
	Depth() int
	Type() LevelType
	Cardinality() int
	UniqueMembers() bool
	Visible() bool
	Properties() []Property
	Members() ([]Member, error)
}

type Member interface {
	Element
	Level() Level
	Type() MemberType
	Ordinal() int
	Depth() int
	Visible() bool
	// Parent is nil for members of the first level.
	Parent() Member
	Children() ([]Member, error)
	ChildCount() int
}

type Measure interface {
	Member
	Aggregator() Aggregator
	// DataType is "Integer", "Numeric" or "String".
	DataType() string
	FormatString() string
	Expression() string
	Calculated() bool
	DisplayFolder() string
}

type NamedSet interface {
	Element
	Expression() string
	DisplayFolder() string
	// Hierarchies lists the names of the hierarchies the set spans.
	Hierarchies() []string
}

type Property interface {
	Name() string
	Caption() string
	Description() string
	DataType() PropertyDataType
	Visible() bool
}

package yamlmodel

import (
	"time"

	"github.com/kent-id/xmladiscover/olap"
)

type element struct {
	name, uniqueName, caption, description string
}

func newElement(name, uniqueName, caption, description string) element {
	if caption == "" {
		caption = name
	}
	return element{name: name, uniqueName: uniqueName, caption: caption, description: description}
}

func (e *element) Name() string        { return e.name }
func (e *element) UniqueName() string  { return e.uniqueName }
func (e *element) Caption() string     { return e.caption }
func (e *element) Description() string { return e.description }

type catalog struct {
	name, description string
	document          string
	schemas           []*schema
	roles             []string
}

type schema struct {
	name     string
	loadTime time.Time
	cubes    []*cube
}

func (s *schema) Name() string        { return s.name }
func (s *schema) LoadTime() time.Time { return s.loadTime }

func (s *schema) Cubes() ([]olap.Cube, error) {
	out := make([]olap.Cube, len(s.cubes))
	for i, c := range s.cubes {
		out[i] = c
	}
	return out, nil
}

type cube struct {
	element
	virtual, visible bool
	dimensions       []*dimension
	measures         []*measure
	sets             []*namedSet
	members          map[string]olap.Member
	levels           map[string]*level
}

func (c *cube) Virtual() bool { return c.virtual }
func (c *cube) Visible() bool { return c.visible }

func (c *cube) Dimensions() ([]olap.Dimension, error) {
	out := make([]olap.Dimension, len(c.dimensions))
	for i, d := range c.dimensions {
		out[i] = d
	}
	return out, nil
}

func (c *cube) Measures() ([]olap.Measure, error) {
	out := make([]olap.Measure, len(c.measures))
	for i, m := range c.measures {
		out[i] = m
	}
	return out, nil
}

func (c *cube) Sets() ([]olap.NamedSet, error) {
	out := make([]olap.NamedSet, len(c.sets))
	for i, s := range c.sets {
		out[i] = s
	}
	return out, nil
}

func (c *cube) LookupMember(uniqueName string) (olap.Member, error) {
	return c.members[uniqueName], nil
}

func (c *cube) LookupLevel(uniqueName string) (olap.Level, error) {
	if l, ok := c.levels[uniqueName]; ok {
		return l, nil
	}
	return nil, nil
}

type dimension struct {
	element
	dimType     olap.DimensionType
	visible     bool
	hierarchies []*hierarchy
}

func (d *dimension) Type() olap.DimensionType { return d.dimType }
func (d *dimension) Visible() bool            { return d.visible }

func (d *dimension) Hierarchies() ([]olap.Hierarchy, error) {
	out := make([]olap.Hierarchy, len(d.hierarchies))
	for i, h := range d.hierarchies {
		out[i] = h
	}
	return out, nil
}

type hierarchy struct {
	element
	dimension     *dimension
	visible       bool
	hasAll        bool
	parentChild   bool
	displayFolder string
	defaultMember olap.Member
	roots         []olap.Member
	levels        []*level
}

func (h *hierarchy) Dimension() olap.Dimension { return h.dimension }
func (h *hierarchy) Visible() bool             { return h.visible }
func (h *hierarchy) HasAll() bool              { return h.hasAll }
func (h *hierarchy) ParentChild() bool         { return h.parentChild }
func (h *hierarchy) DisplayFolder() string     { return h.displayFolder }

func (h *hierarchy) Structure() olap.HierarchyStructure {
	if h.parentChild {
		return olap.StructureUnbalanced
	}
	return olap.StructureFullyBalanced
}

func (h *hierarchy) Cardinality() int {
	n := 0
	for _, l := range h.levels {
		n += len(l.members)
	}
	return n
}

func (h *hierarchy) DefaultMember() (olap.Member, error) { return h.defaultMember, nil }

func (h *hierarchy) RootMembers() ([]olap.Member, error) {
	return append([]olap.Member(nil), h.roots...), nil
}

func (h *hierarchy) Levels() ([]olap.Level, error) {
	out := make([]olap.Level, len(h.levels))
	for i, l := range h.levels {
		out[i] = l
	}
	return out, nil
}

type level struct {
	element
	hierarchy     *hierarchy
	depth         int
	levelType     olap.LevelType
	uniqueMembers bool
	visible       bool
	properties    []olap.Property
	members       []olap.Member
}

func (l *level) Hierarchy() olap.Hierarchy   { return l.hierarchy }
func (l *level) Depth() int                  { return l.depth }
func (l *level) Type() olap.LevelType        { return l.levelType }
func (l *level) Cardinality() int            { return len(l.members) }
func (l *level) UniqueMembers() bool         { return l.uniqueMembers }
func (l *level) Visible() bool               { return l.visible }
func (l *level) Properties() []olap.Property { return l.properties }
func (l *level) Members() ([]olap.Member, error) {
	return append([]olap.Member(nil), l.members...), nil
}

type member struct {
	element
	level      *level
	memberType olap.MemberType
	ordinal    int
	visible    bool
	parent     *member
	children   []olap.Member
}

func (m *member) Level() olap.Level     { return m.level }
func (m *member) Type() olap.MemberType { return m.memberType }
func (m *member) Ordinal() int          { return m.ordinal }
func (m *member) Depth() int            { return m.level.depth }
func (m *member) Visible() bool         { return m.visible }
func (m *member) ChildCount() int       { return len(m.children) }

func (m *member) Parent() olap.Member {
	if m.parent == nil {
		return nil
	}
	return m.parent
}

func (m *member) Children() ([]olap.Member, error) {
	return append([]olap.Member(nil), m.children...), nil
}

type measure struct {
	member
	aggregator    olap.Aggregator
	dataType      string
	formatString  string
	expression    string
	displayFolder string
}

func (m *measure) Aggregator() olap.Aggregator { return m.aggregator }
func (m *measure) DataType() string            { return m.dataType }
func (m *measure) FormatString() string        { return m.formatString }
func (m *measure) Expression() string          { return m.expression }
func (m *measure) Calculated() bool            { return m.expression != "" }
func (m *measure) DisplayFolder() string       { return m.displayFolder }

type namedSet struct {
	element
	expression    string
	displayFolder string
	hierarchies   []string
}

func (s *namedSet) Expression() string    { return s.expression }
func (s *namedSet) DisplayFolder() string { return s.displayFolder }
func (s *namedSet) Hierarchies() []string { return s.hierarchies }

type property struct {
	name, caption, description string
	dataType                   olap.PropertyDataType
	visible                    bool
}

func (p *property) Name() string                    { return p.name }
func (p *property) Caption() string                 { return p.caption }
func (p *property) Description() string             { return p.description }
func (p *property) DataType() olap.PropertyDataType { return p.dataType }
func (p *property) Visible() bool                   { return p.visible }
